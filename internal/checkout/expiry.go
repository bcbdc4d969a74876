package checkout

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpiryPolicy bounds the two-digit year accepted in an MM/YY expiry.
// The year is checked against [0, MaxYear] only; there is no check that the
// card has not already expired.
type ExpiryPolicy struct {
	MaxYear int
}

// DefaultExpiryPolicy accepts any two-digit year.
var DefaultExpiryPolicy = ExpiryPolicy{MaxYear: 99}

// NormalizeExpiry keeps the digits of s and formats them as MM/YY while the
// user types: "1" -> "1", "122" -> "12/2", "12/2499" -> "12/24".
func NormalizeExpiry(s string) string {
	digits := digitsOnly(s, 4)
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

func (p ExpiryPolicy) Validate(expiry string) error {
	invalid := func(msg string) error {
		return &ValidationError{Field: "expiry", Message: msg}
	}

	monthStr, yearStr, ok := strings.Cut(expiry, "/")
	if !ok || monthStr == "" || yearStr == "" {
		return invalid("expiry must be in MM/YY format")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return invalid("expiry month is not a number")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return invalid("expiry year is not a number")
	}
	if month < 1 || month > 12 {
		return invalid("expiry month must be between 1 and 12")
	}
	if year < 0 || year > p.MaxYear {
		return invalid(fmt.Sprintf("expiry year must be between 0 and %d", p.MaxYear))
	}
	return nil
}
