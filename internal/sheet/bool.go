package sheet

import (
	"fmt"
	"strings"
)

// ParseBool reads an optionality cell. Empty cells are false.
func ParseBool(cell string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "false", "0", "no", "n", "off", "f":
		return false, nil
	case "true", "1", "yes", "y", "on", "t", "x", "✓":
		return true, nil
	default:
		return false, fmt.Errorf("%q is not a boolean", cell)
	}
}
