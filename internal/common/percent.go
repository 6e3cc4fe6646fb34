package common

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSignedPercent renders a percentage with an explicit sign and two
// decimal places: "+2.35%", "-1.23%", "+0.00%".
func FormatSignedPercent(value float64) string {
	return fmt.Sprintf("%+.2f%%", value)
}

// ParseSignedPercent parses strings like "+2.35%", "-1.23" or "0.5%" into a
// float64. Returns false for anything that is not a signed decimal.
func ParseSignedPercent(value string) (float64, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), "%")
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
