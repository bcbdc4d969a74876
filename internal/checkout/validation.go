package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCheckoutUnavailable is returned when the cart is empty or the customer
// block is incomplete. The checkout action is disabled in that state.
var ErrCheckoutUnavailable = errors.New("checkout unavailable")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	cardNumberLength = 16
	cvvLength        = 3
)

func validateCardNumber(number string) error {
	if len(number) != cardNumberLength || !allDigits(number) {
		return &ValidationError{
			Field:   "card_number",
			Message: fmt.Sprintf("card number must be exactly %d digits", cardNumberLength),
		}
	}
	return nil
}

func validateCVV(cvv string) error {
	if len(cvv) != cvvLength || !allDigits(cvv) {
		return &ValidationError{
			Field:   "cvv",
			Message: fmt.Sprintf("cvv must be exactly %d digits", cvvLength),
		}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			if b.Len() == max {
				break
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
