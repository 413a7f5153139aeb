package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// South African mobile numbers: 06x/07x/08x ranges
var zaMobilePattern = regexp.MustCompile(`^(6|7|8)\d{8}$`)

// ValidatePhoneNumber validates a phone number and normalizes it to E.164
// form with the South African country code (+27).
func ValidatePhoneNumber(phone string) (bool, string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or leading zero
	if strings.HasPrefix(stripped, "27") {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !zaMobilePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid phone number format or not a South African mobile number")
	}

	return true, "+27" + stripped, nil
}
