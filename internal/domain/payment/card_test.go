package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCard() CardDetails {
	return CardDetails{
		Name:   "Jane Doe",
		Number: "4111 1111 1111 1111",
		Expiry: "12/27",
		CVV:    "123",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CardDetails)
		wantErr string
	}{
		{"valid", func(c *CardDetails) {}, ""},
		{"valid amex cvv", func(c *CardDetails) { c.CVV = "1234" }, ""},
		{"short name", func(c *CardDetails) { c.Name = "Jo" }, "name on card"},
		{"whitespace name", func(c *CardDetails) { c.Name = "  J  " }, "name on card"},
		{"short number", func(c *CardDetails) { c.Number = "4111" }, "16 digits"},
		{"long number", func(c *CardDetails) { c.Number = "4111 1111 1111 1111 1" }, "16 digits"},
		{"letters in number", func(c *CardDetails) { c.Number = "4111 abcd 1111 1111" }, "16 digits"},
		{"bad month", func(c *CardDetails) { c.Expiry = "13/27" }, "MM/YY"},
		{"zero month", func(c *CardDetails) { c.Expiry = "00/27" }, "MM/YY"},
		{"no slash", func(c *CardDetails) { c.Expiry = "1227" }, "MM/YY"},
		{"four digit year", func(c *CardDetails) { c.Expiry = "12/2027" }, "MM/YY"},
		{"short cvv", func(c *CardDetails) { c.CVV = "12" }, "CVV"},
		{"long cvv", func(c *CardDetails) { c.CVV = "12345" }, "CVV"},
		{"alpha cvv", func(c *CardDetails) { c.CVV = "12a" }, "CVV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(&card)

			err := card.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatNumber("4111-1111-1111-1111"))
	assert.Equal(t, "4111 11", FormatNumber("411111"))
	assert.Equal(t, "", FormatNumber(""))
}

func TestMaskNumber(t *testing.T) {
	assert.Equal(t, "•••• •••• •••• 1111", MaskNumber("4111 1111 1111 1111"))
	assert.Equal(t, "1234", MaskNumber("1234"))
	assert.Equal(t, "", MaskNumber(""))
}

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4111 1111 1111 1111", "VISA"},
		{"5111 1111 1111 1111", "MASTERCARD"},
		{"5511 1111 1111 1111", "MASTERCARD"},
		{"5611 1111 1111 1111", "CARD"},
		{"3411 1111 1111 111", "AMEX"},
		{"3711 1111 1111 111", "AMEX"},
		{"6011 1111 1111 1111", "CARD"},
		{"", "CARD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectBrand(tt.number), "number=%q", tt.number)
	}
}
