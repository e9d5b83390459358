package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/infrast-go/internal/application/infrast"
)

// SequenceFormatter renders a compiled sequence as a tree of segments
type SequenceFormatter struct {
	useColors bool
}

// NewSequenceFormatter creates a new sequence formatter
func NewSequenceFormatter(useColors bool) *SequenceFormatter {
	return &SequenceFormatter{useColors: useColors}
}

// Format renders one branch per segment
func (f *SequenceFormatter) Format(units []infrast.UnitRef) string {
	if len(units) == 0 {
		return "(empty sequence)"
	}

	groups := groupSegments(units)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("sequence (%d units)\n", len(units)))
	for gi, group := range groups {
		last := gi == len(groups)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}
		builder.WriteString(branch + f.colorize(group[0].Segment) + "\n")

		for ui, u := range group {
			leaf := "├── "
			if ui == len(group)-1 {
				leaf = "└── "
			}
			builder.WriteString(fmt.Sprintf("%s%s[%d] %s (%s)\n", indent, leaf, u.Position, u.Kind, u.UnitID))
		}
	}

	return strings.TrimRight(builder.String(), "\n")
}

func groupSegments(units []infrast.UnitRef) [][]infrast.UnitRef {
	var groups [][]infrast.UnitRef
	for _, u := range units {
		n := len(groups)
		if n > 0 && groups[n-1][0].SegmentIndex == u.SegmentIndex {
			groups[n-1] = append(groups[n-1], u)
			continue
		}
		groups = append(groups, []infrast.UnitRef{u})
	}
	return groups
}

func (f *SequenceFormatter) colorize(segment string) string {
	if !f.useColors {
		return segment
	}
	switch segment {
	case "special_pre", "special_post":
		return "\033[35m" + segment + "\033[0m"
	case "lead_in":
		return "\033[36m" + segment + "\033[0m"
	}
	return segment
}
