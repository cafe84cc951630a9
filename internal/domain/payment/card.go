// internal/domain/payment/card.go
package payment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// CardDetails is the payment input for the simulated checkout. The CVV is
// validated and then discarded; it is never persisted.
type CardDetails struct {
	Name   string `json:"name"`
	Number string `json:"number"` // digits, spaces allowed
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

// Validate checks the card fields, returning the first problem found.
// A failed validation surfaces as a rejected submit, never a panic.
func (c CardDetails) Validate() error {
	if len(strings.TrimSpace(c.Name)) < 3 {
		return fmt.Errorf("name on card must be at least 3 characters")
	}

	digits := digitsOnly(c.Number)
	if len(digits) != 16 {
		return fmt.Errorf("card number must be exactly 16 digits")
	}

	if !expiryPattern.MatchString(c.Expiry) {
		return fmt.Errorf("expiry must be in MM/YY format")
	}

	if len(c.CVV) < 3 || len(c.CVV) > 4 {
		return fmt.Errorf("CVV must be 3 or 4 digits")
	}
	for _, r := range c.CVV {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("CVV must be 3 or 4 digits")
		}
	}

	return nil
}

// FormatNumber renders the digits in space-separated groups of four.
func FormatNumber(number string) string {
	digits := digitsOnly(number)
	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

// MaskNumber hides all but the last four digits.
func MaskNumber(number string) string {
	digits := digitsOnly(number)
	if len(digits) <= 4 {
		return digits
	}
	return "•••• •••• •••• " + digits[len(digits)-4:]
}

// DetectBrand infers the card brand from the leading digits, defaulting
// to a generic label.
func DetectBrand(number string) string {
	digits := digitsOnly(number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return "VISA"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "MASTERCARD"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "AMEX"
	default:
		return "CARD"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
