package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/infrast-go/internal/adapters/logging"
	"github.com/andrescamacho/infrast-go/internal/adapters/persistence"
	"github.com/andrescamacho/infrast-go/internal/adapters/planfile"
	"github.com/andrescamacho/infrast-go/internal/application/common"
	"github.com/andrescamacho/infrast-go/internal/application/infrast"
	"github.com/andrescamacho/infrast-go/internal/application/mediator"
	domain "github.com/andrescamacho/infrast-go/internal/domain/infrast"
	"github.com/andrescamacho/infrast-go/internal/domain/shared"
	"github.com/andrescamacho/infrast-go/test/helpers"
)

// infrastCompileContext holds state for compile scenarios
type infrastCompileContext struct {
	planDir  string
	session  *infrast.Session
	mediator mediator.Mediator
	loggers  logging.Tee
	logRepo  *persistence.GormCompileLogRepository
	clock    *shared.MockClock

	response    *infrast.CompileInfrastResponse
	previousIDs []string
}

func (ic *infrastCompileContext) reset() error {
	ic.cleanup()

	dir, err := os.MkdirTemp("", "infrast-plans-")
	if err != nil {
		return fmt.Errorf("failed to create plan dir: %w", err)
	}
	ic.planDir = dir
	ic.session = nil
	ic.mediator = nil
	ic.loggers = nil
	ic.logRepo = nil
	ic.clock = nil
	ic.response = nil
	ic.previousIDs = nil
	return nil
}

func (ic *infrastCompileContext) cleanup() {
	if ic.planDir != "" {
		_ = os.RemoveAll(ic.planDir)
		ic.planDir = ""
	}
}

func (ic *infrastCompileContext) unitIDs() []string {
	var ids []string
	for _, u := range ic.session.Sequence().Units() {
		ids = append(ids, u.ID())
	}
	return ids
}

func (ic *infrastCompileContext) unit(kind string) (*domain.Unit, error) {
	if kind == string(domain.UnitSpecialDorm) {
		for _, u := range ic.session.Sequence().Units() {
			if u.Kind() == domain.UnitSpecialDorm {
				return u, nil
			}
		}
		return nil, fmt.Errorf("sequence has no %s unit", kind)
	}
	u := ic.session.Catalogue().Unit(domain.UnitKind(kind))
	if u == nil {
		return nil, fmt.Errorf("unknown unit kind %q", kind)
	}
	return u, nil
}

// ============================================================================
// Setup Steps
// ============================================================================

func (ic *infrastCompileContext) aFreshInfrastSession() error {
	ic.session = infrast.NewSession(planfile.NewLoader(), ic.planDir)
	ic.mediator = mediator.NewMediator()
	return mediator.RegisterHandler[*infrast.CompileInfrastCommand](ic.mediator, infrast.NewCompileInfrastHandler(ic.session))
}

func (ic *infrastCompileContext) compileLogsArePersisted() error {
	if ic.session == nil {
		return fmt.Errorf("no session")
	}
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	ic.clock = shared.NewMockClock(shared.NewRealClock().Now())
	ic.logRepo = persistence.NewGormCompileLogRepository(helpers.SharedTestDB, ic.clock)
	ic.loggers = append(ic.loggers, persistence.NewRepositoryLogger(ic.logRepo, ic.session.ID(), nil))
	return nil
}

func (ic *infrastCompileContext) aPlanFileWithContent(name string, content *godog.DocString) error {
	return os.WriteFile(filepath.Join(ic.planDir, name), []byte(content.Content), 0o644)
}

func (ic *infrastCompileContext) theSessionStartsExecuting() error {
	ic.session.BeginExecution()
	return nil
}

func (ic *infrastCompileContext) theSessionStopsExecuting() error {
	ic.session.EndExecution()
	return nil
}

// ============================================================================
// Action Steps
// ============================================================================

func (ic *infrastCompileContext) iCompileParams(params *godog.DocString) error {
	return ic.compile(json.RawMessage(params.Content))
}

func (ic *infrastCompileContext) iCompileTheFacilityList(list string) error {
	facilities := splitList(list)
	if facilities == nil {
		facilities = []string{}
	}
	raw, err := json.Marshal(map[string]interface{}{"facility": facilities})
	if err != nil {
		return err
	}
	return ic.compile(raw)
}

func (ic *infrastCompileContext) compile(raw json.RawMessage) error {
	ic.previousIDs = ic.unitIDs()

	ctx := common.WithLogger(context.Background(), ic.loggers)
	resp, err := ic.mediator.Send(ctx, &infrast.CompileInfrastCommand{Params: raw})
	if err != nil {
		return err
	}
	ic.response = resp.(*infrast.CompileInfrastResponse)
	return nil
}

func (ic *infrastCompileContext) secondsPass(seconds int) error {
	if ic.clock == nil {
		return fmt.Errorf("compile logs are not persisted")
	}
	ic.clock.Advance(secondsDuration(seconds))
	return nil
}

// ============================================================================
// Assertion Steps
// ============================================================================

func (ic *infrastCompileContext) theCompileShouldSucceed() error {
	if !ic.response.Success {
		return fmt.Errorf("expected success, got error: %s", ic.response.Error)
	}
	return nil
}

func (ic *infrastCompileContext) theCompileShouldFail() error {
	if ic.response.Success {
		return fmt.Errorf("expected compile to fail")
	}
	return nil
}

func (ic *infrastCompileContext) theCompileErrorShouldContain(text string) error {
	if !strings.Contains(ic.response.Error, text) {
		return fmt.Errorf("expected error containing %q, got %q", text, ic.response.Error)
	}
	return nil
}

func (ic *infrastCompileContext) theSequenceShouldBe(expected string) error {
	want := splitList(expected)
	var got []string
	for _, kind := range ic.session.Sequence().Kinds() {
		got = append(got, string(kind))
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected sequence %v, got %v", want, got)
	}
	return nil
}

func (ic *infrastCompileContext) theSequenceShouldBeUnchanged() error {
	got := ic.unitIDs()
	if strings.Join(got, ",") != strings.Join(ic.previousIDs, ",") {
		return fmt.Errorf("expected sequence %v to be kept, got %v", ic.previousIDs, got)
	}
	return nil
}

func (ic *infrastCompileContext) everyMoodUnitShouldHaveMoodThreshold(threshold float64) error {
	for _, kind := range domain.MoodUnits {
		got := ic.session.Catalogue().Unit(kind).Settings().MoodThreshold
		if got != threshold {
			return fmt.Errorf("unit %s: expected mood threshold %.2f, got %.2f", kind, threshold, got)
		}
	}
	return nil
}

func (ic *infrastCompileContext) unitShouldHaveSettings(kind string, table *godog.Table) error {
	u, err := ic.unit(kind)
	if err != nil {
		return err
	}
	s := u.Settings()

	for setting, want := range tableToMap(table) {
		var got string
		switch setting {
		case "drone_mode":
			got = s.DroneMode
		case "notstationed":
			got = strconv.FormatBool(s.NotStationedEnabled)
		case "trust":
			got = strconv.FormatBool(s.TrustEnabled)
		case "replenish":
			got = strconv.FormatBool(s.ShardReplenish)
		case "mood_threshold":
			got = strconv.FormatFloat(s.MoodThreshold, 'f', -1, 64)
		case "rooms":
			got = strconv.Itoa(len(s.Layout))
		case "drone_slot":
			got = "none"
			if s.Drones != nil {
				got = strconv.Itoa(s.Drones.SlotIndex)
			}
		case "drone_order":
			got = "none"
			if s.Drones != nil {
				got = string(s.Drones.Order)
			}
		default:
			return fmt.Errorf("unknown setting %q", setting)
		}
		if got != want {
			return fmt.Errorf("unit %s: expected %s=%s, got %s", kind, setting, want, got)
		}
	}
	return nil
}

func (ic *infrastCompileContext) roomOfUnitShouldHave(room int, kind string, table *godog.Table) error {
	u, err := ic.unit(kind)
	if err != nil {
		return err
	}
	layout := u.Settings().Layout
	if room >= len(layout) {
		return fmt.Errorf("unit %s has %d rooms, no room %d", kind, len(layout), room)
	}
	r := layout[room]

	for field, want := range tableToMap(table) {
		var got string
		switch field {
		case "product":
			got = "none"
			if r.Product != nil {
				got = string(*r.Product)
			}
		case "names":
			got = strings.Join(r.Names, ", ")
		case "candidates":
			got = strings.Join(r.Candidates, ", ")
		case "sort":
			got = strconv.FormatBool(r.Sort)
		case "skip":
			got = strconv.FormatBool(r.Skip)
		case "autofill":
			got = strconv.FormatBool(r.Autofill)
		default:
			return fmt.Errorf("unknown room field %q", field)
		}
		if got != want {
			return fmt.Errorf("unit %s room %d: expected %s=%q, got %q", kind, room, field, want, got)
		}
	}
	return nil
}

func (ic *infrastCompileContext) theLogsShouldContainEntry(level, message string) error {
	entries, err := ic.logRepo.GetLogs(context.Background(), ic.session.ID(), 100, &level)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.Contains(e.Message, message) {
			return nil
		}
	}
	return fmt.Errorf("no %s entry containing %q among %d entries", level, message, len(entries))
}

func (ic *infrastCompileContext) entriesShouldBePersisted(count int, level string) error {
	entries, err := ic.logRepo.GetLogs(context.Background(), ic.session.ID(), 100, &level)
	if err != nil {
		return err
	}
	if len(entries) != count {
		return fmt.Errorf("expected %d %s entries, got %d", count, level, len(entries))
	}
	return nil
}

// InitializeInfrastCompileScenario registers compile steps
func InitializeInfrastCompileScenario(sc *godog.ScenarioContext) {
	ic := &infrastCompileContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, ic.reset()
	})
	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		ic.cleanup()
		return ctx, nil
	})

	// Setup steps
	sc.Step(`^a fresh infrast session$`, ic.aFreshInfrastSession)
	sc.Step(`^compile logs are persisted$`, ic.compileLogsArePersisted)
	sc.Step(`^a plan file "([^"]*)" with content:$`, ic.aPlanFileWithContent)
	sc.Step(`^the session starts executing$`, ic.theSessionStartsExecuting)
	sc.Step(`^the session stops executing$`, ic.theSessionStopsExecuting)

	// Action steps
	sc.Step(`^I compile params:$`, ic.iCompileParams)
	sc.Step(`^I compile the facility list "([^"]*)"$`, ic.iCompileTheFacilityList)
	sc.Step(`^(\d+) seconds pass$`, ic.secondsPass)

	// Assertion steps
	sc.Step(`^the compile should succeed$`, ic.theCompileShouldSucceed)
	sc.Step(`^the compile should fail$`, ic.theCompileShouldFail)
	sc.Step(`^the compile error should contain "([^"]*)"$`, ic.theCompileErrorShouldContain)
	sc.Step(`^the sequence should be "([^"]*)"$`, ic.theSequenceShouldBe)
	sc.Step(`^the sequence should be unchanged$`, ic.theSequenceShouldBeUnchanged)
	sc.Step(`^every mood unit should have mood threshold ([\d.]+)$`, ic.everyMoodUnitShouldHaveMoodThreshold)
	sc.Step(`^unit "([^"]*)" should have settings:$`, ic.unitShouldHaveSettings)
	sc.Step(`^room (\d+) of unit "([^"]*)" should have:$`, ic.roomOfUnitShouldHave)
	sc.Step(`^the persisted logs should contain an? (DEBUG|INFO|WARN|ERROR) entry "([^"]*)"$`, ic.theLogsShouldContainEntry)
	sc.Step(`^(\d+) (DEBUG|INFO|WARN|ERROR) entries should be persisted$`, ic.entriesShouldBePersisted)
}
