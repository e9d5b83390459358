package infrast

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
)

// Result is the outcome of one compile. Sequence is never nil; on failure it
// is whatever the caller should keep running with. Patches are returned even
// on failure because global parameters apply unconditionally.
type Result struct {
	Sequence *domain.Sequence
	Patches  []domain.Patch
	Success  bool
	Err      error
}

// Compiler turns task parameters into a sequence plus configuration patches.
// It reads catalogue units to reference them but never mutates them.
type Compiler struct {
	catalogue *domain.Catalogue
	loader    PlanLoader
	planDir   string
}

// NewCompiler creates a compiler over a session's catalogue
func NewCompiler(catalogue *domain.Catalogue, loader PlanLoader, planDir string) *Compiler {
	return &Compiler{
		catalogue: catalogue,
		loader:    loader,
		planDir:   planDir,
	}
}

// Compile runs the quick-list builder (when idle), the global parameters
// (always) and, in custom mode while idle, the plan parser and overlays.
func (c *Compiler) Compile(ctx context.Context, state domain.Lifecycle, current *domain.Sequence, params *Params) Result {
	logger := common.LoggerFromContext(ctx)

	if current == nil {
		current = domain.MinimalSequence(c.catalogue.Anchor())
	}
	result := Result{Sequence: current, Success: true}

	rebuild := state == domain.Idle
	if rebuild {
		var seq *domain.Sequence
		facility, err := params.FacilityList()
		if err == nil {
			seq, err = buildQuickList(c.catalogue, facility)
		}
		if err != nil {
			logger.Log(common.LevelError, "failed to build facility list", map[string]interface{}{
				"error": err.Error(),
			})
			result.Success = false
			result.Err = err
			if seq != nil {
				result.Sequence = seq
			}
		} else {
			result.Sequence = seq
		}
	}

	result.Patches = globalPatches(params)

	if !params.IsCustom() || !rebuild || !result.Success {
		return result
	}

	plan, err := c.loadPlan(ctx, params)
	if err != nil {
		logger.Log(common.LevelError, "failed to apply custom plan", map[string]interface{}{
			"filename":   string(params.Filename),
			"plan_index": string(params.PlanIndex),
			"error":      err.Error(),
		})
		result.Success = false
		result.Err = err
		return result
	}

	result.Patches = append(result.Patches, plan.LayoutPatches()...)
	result.Patches = append(result.Patches, dronePatches(plan.Drones)...)
	result.Sequence = overlaySpecialOperator(result.Sequence, c.catalogue.Anchor(), plan.Special)

	return result
}

func (c *Compiler) loadPlan(ctx context.Context, params *Params) (*domain.Plan, error) {
	filename, err := params.PlanFilename()
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, &domain.ErrMissingFilename{}
	}
	index, err := params.PlanIndexValue()
	if err != nil {
		return nil, err
	}
	if c.loader == nil {
		return nil, fmt.Errorf("no plan loader configured")
	}

	path := filename
	if c.planDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(c.planDir, path)
	}

	doc, err := c.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(ctx, doc, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}
