package valueobject

import "strings"

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	JPY Currency = "JPY" // Japanese Yen
	CNY Currency = "CNY" // Chinese Yuan
	AUD Currency = "AUD" // Australian Dollar
	CAD Currency = "CAD" // Canadian Dollar
	CHF Currency = "CHF" // Swiss Franc
)

// DefaultCurrency is the fallback currency when a channel declares none
const DefaultCurrency = USD

// ParseCurrency normalizes a currency code string.
// It does not validate against the full ISO table; codes are three
// uppercase letters by convention.
func ParseCurrency(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}

// String returns the string representation of the currency code
func (c Currency) String() string {
	return string(c)
}

// IsZero returns true if no currency code is set
func (c Currency) IsZero() bool {
	return c == ""
}

// IsValid returns true if the code has the shape of an ISO 4217 code
func (c Currency) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
