package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUnitID creates a short, human-readable task unit ID.
// Format: {kind}-{8charHexUUID}
//
// Example:
//   - Input: kind="special_dorm"
//   - Output: "special_dorm-a3f8e2b1"
func GenerateUnitID(kind string) string {
	return kind + "-" + generateShortUUID()
}

// GenerateSessionID creates an ID for one automation session's compile log
func GenerateSessionID() string {
	return "infrast-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
