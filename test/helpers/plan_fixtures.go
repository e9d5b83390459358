package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

// WritePlanFile writes a plan document into a fresh temp directory and
// returns its path. The extension of name selects the plan format.
func WritePlanFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write plan file: %v", err)
	}
	return path
}

// SamplePlanJSONC is a two-plan document exercising comments, trailing
// commas, the special operator and drone redirection.
const SamplePlanJSONC = `{
  // day and night rotations
  "title": "sample",
  "plans": [
    {
      "name": "day",
      "rooms": {
        "manufacture": [
          { "product": "Pure Gold", "operators": ["Weedy", "Bibeak"] },
          { "product": "Battle Record", "sort": true, "candidates": ["Vermeil"], },
        ],
        "trading": [
          { "operators": ["Texas", "Lappland"] }
        ],
        "dormitory": [
          { "autofill": true }
        ]
      },
      "Fiammetta": { "enable": true, "target": "Kal'tsit", "order": "pre" },
      "drones": { "enable": true, "index": 3, "order": "post", "room": "manufacture" }
    },
    {
      "name": "night",
      "rooms": {
        "power": [ { "skip": true } ]
      }
    }
  ]
}`

// SamplePlanYAML mirrors the first plan of SamplePlanJSONC
const SamplePlanYAML = `plans:
  - name: day
    rooms:
      manufacture:
        - product: Pure Gold
          operators: [Weedy, Bibeak]
        - product: Battle Record
          sort: true
          candidates: [Vermeil]
      trading:
        - operators: [Texas, Lappland]
      dormitory:
        - autofill: true
    Fiammetta:
      enable: true
      target: Kal'tsit
      order: pre
    drones:
      enable: true
      index: 3
      order: post
      room: manufacture
`
