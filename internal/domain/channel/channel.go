package channel

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/storecore/backend/internal/domain/shared"
	"github.com/storecore/backend/internal/domain/shared/valueobject"
)

var channelCodePattern = regexp.MustCompile(`^[a-z0-9\-]+$`)

// CurrencyList is a set of currency codes stored as a JSON array column
type CurrencyList []valueobject.Currency

// Contains returns true if the list contains the given currency
func (l CurrencyList) Contains(code valueobject.Currency) bool {
	for _, c := range l {
		if c == code {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for database storage
func (l CurrencyList) Value() (driver.Value, error) {
	if l == nil {
		l = CurrencyList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for database retrieval
func (l *CurrencyList) Scan(value any) error {
	if value == nil {
		*l = CurrencyList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into CurrencyList", value)
	}
}

// Channel represents a distinct sales context (storefront, region, marketplace)
// with its own currency configuration. A price mutation naming a currency
// outside AvailableCurrencyCodes is rejected before anything is written.
type Channel struct {
	shared.BaseAggregateRoot
	Code                   string               `gorm:"type:varchar(50);not null;uniqueIndex"`
	Token                  string               `gorm:"type:varchar(100);not null;uniqueIndex"`
	DefaultCurrencyCode    valueobject.Currency `gorm:"type:varchar(3);not null"`
	AvailableCurrencyCodes CurrencyList         `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (Channel) TableName() string {
	return "channels"
}

// NewChannel creates a new channel. The default currency is always part of
// the available set; passing an empty available list yields a single-currency
// channel.
func NewChannel(code, token string, defaultCurrency valueobject.Currency, available []valueobject.Currency) (*Channel, error) {
	if err := validateChannelCode(code); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Channel token cannot be empty")
	}
	if !defaultCurrency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid default currency code %q", defaultCurrency))
	}

	currencies, err := normalizeCurrencySet(defaultCurrency, available)
	if err != nil {
		return nil, err
	}

	ch := &Channel{
		BaseAggregateRoot:      shared.NewBaseAggregateRoot(),
		Code:                   code,
		Token:                  token,
		DefaultCurrencyCode:    defaultCurrency,
		AvailableCurrencyCodes: currencies,
	}

	ch.AddDomainEvent(NewChannelCreatedEvent(ch))

	return ch, nil
}

// IsCurrencyAvailable returns true if the channel permits the currency
func (c *Channel) IsCurrencyAvailable(code valueobject.Currency) bool {
	return c.AvailableCurrencyCodes.Contains(code)
}

// AssertCurrencyAvailable fails with a CurrencyNotAvailable error if the
// channel does not permit the currency. Callers must invoke this before any
// price mutation or order currency change.
func (c *Channel) AssertCurrencyAvailable(code valueobject.Currency) error {
	if !c.IsCurrencyAvailable(code) {
		return shared.NewCurrencyNotAvailableError(code.String())
	}
	return nil
}

// EffectiveCurrency resolves the currency to operate in: the requested
// currency if given, otherwise the channel default.
func (c *Channel) EffectiveCurrency(requested valueobject.Currency) valueobject.Currency {
	if requested.IsZero() {
		return c.DefaultCurrencyCode
	}
	return requested
}

// SetCurrencies replaces the channel's currency configuration. Shrinking the
// available set does not delete price records already stored in removed
// currencies; those records simply become unreachable for new operations.
func (c *Channel) SetCurrencies(defaultCurrency valueobject.Currency, available []valueobject.Currency) error {
	if !defaultCurrency.IsValid() {
		return shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid default currency code %q", defaultCurrency))
	}

	currencies, err := normalizeCurrencySet(defaultCurrency, available)
	if err != nil {
		return err
	}

	c.DefaultCurrencyCode = defaultCurrency
	c.AvailableCurrencyCodes = currencies
	c.Touch()
	c.IncrementVersion()

	c.AddDomainEvent(NewChannelCurrenciesChangedEvent(c))

	return nil
}

// AddCurrency adds a currency to the available set; no-op if already present
func (c *Channel) AddCurrency(code valueobject.Currency) error {
	if !code.IsValid() {
		return shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid currency code %q", code))
	}
	if c.AvailableCurrencyCodes.Contains(code) {
		return nil
	}

	c.AvailableCurrencyCodes = append(c.AvailableCurrencyCodes, code)
	c.Touch()
	c.IncrementVersion()

	c.AddDomainEvent(NewChannelCurrenciesChangedEvent(c))

	return nil
}

// RemoveCurrency removes a currency from the available set. The default
// currency cannot be removed.
func (c *Channel) RemoveCurrency(code valueobject.Currency) error {
	if code == c.DefaultCurrencyCode {
		return shared.NewDomainError("INVALID_CURRENCY", "Cannot remove the default currency from a Channel")
	}
	if !c.AvailableCurrencyCodes.Contains(code) {
		return nil
	}

	remaining := make(CurrencyList, 0, len(c.AvailableCurrencyCodes)-1)
	for _, existing := range c.AvailableCurrencyCodes {
		if existing != code {
			remaining = append(remaining, existing)
		}
	}
	c.AvailableCurrencyCodes = remaining
	c.Touch()
	c.IncrementVersion()

	c.AddDomainEvent(NewChannelCurrenciesChangedEvent(c))

	return nil
}

func normalizeCurrencySet(defaultCurrency valueobject.Currency, available []valueobject.Currency) (CurrencyList, error) {
	currencies := CurrencyList{defaultCurrency}
	for _, code := range available {
		if !code.IsValid() {
			return nil, shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Invalid currency code %q", code))
		}
		if !currencies.Contains(code) {
			currencies = append(currencies, code)
		}
	}
	return currencies, nil
}

func validateChannelCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Channel code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Channel code cannot exceed 50 characters")
	}
	if !channelCodePattern.MatchString(code) {
		return shared.NewDomainError("INVALID_CODE", "Channel code can only contain lowercase letters, numbers and hyphens")
	}
	return nil
}
