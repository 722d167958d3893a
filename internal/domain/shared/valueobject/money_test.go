package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(1299, USD)
		require.NoError(t, err)
		assert.Equal(t, int64(1299), m.Amount())
		assert.Equal(t, USD, m.Currency())
	})

	t.Run("fails with empty currency", func(t *testing.T) {
		_, err := NewMoney(100, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})

	t.Run("fails with malformed currency code", func(t *testing.T) {
		_, err := NewMoney(100, "usd")
		require.Error(t, err)

		_, err = NewMoney(100, "DOLLARS")
		require.Error(t, err)
	})

	t.Run("allows negative amounts", func(t *testing.T) {
		m, err := NewMoney(-500, EUR)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("adds same-currency amounts", func(t *testing.T) {
		a := MustNewMoney(1000, GBP)
		b := MustNewMoney(440, GBP)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, int64(1440), sum.Amount())
	})

	t.Run("rejects cross-currency addition", func(t *testing.T) {
		a := MustNewMoney(1000, GBP)
		b := MustNewMoney(1000, USD)

		_, err := a.Add(b)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "different currencies")
	})

	t.Run("subtracts same-currency amounts", func(t *testing.T) {
		a := MustNewMoney(1000, GBP)
		b := MustNewMoney(440, GBP)

		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, int64(560), diff.Amount())
	})

	t.Run("multiplies by quantity", func(t *testing.T) {
		m := MustNewMoney(1200, USD).MultiplyByInt(3)
		assert.Equal(t, int64(3600), m.Amount())
	})

	t.Run("is immutable", func(t *testing.T) {
		a := MustNewMoney(100, USD)
		_ = a.MultiplyByInt(5)
		assert.Equal(t, int64(100), a.Amount())
	})
}

func TestMoneyApplyRate(t *testing.T) {
	t.Run("applies tax rate with half-up rounding", func(t *testing.T) {
		m := MustNewMoney(1000, USD)
		withTax := m.ApplyRate(decimal.NewFromFloat(1.2))
		assert.Equal(t, int64(1200), withTax.Amount())
	})

	t.Run("rounds to nearest minor unit", func(t *testing.T) {
		m := MustNewMoney(999, USD)
		// 999 * 1.175 = 1173.825 -> 1174
		withTax := m.ApplyRate(decimal.NewFromFloat(1.175))
		assert.Equal(t, int64(1174), withTax.Amount())
	})

	t.Run("identity rate leaves amount unchanged", func(t *testing.T) {
		m := MustNewMoney(4242, GBP)
		assert.Equal(t, int64(4242), m.ApplyRate(decimal.NewFromInt(1)).Amount())
	})
}

func TestMoneyJSON(t *testing.T) {
	t.Run("round-trips through JSON", func(t *testing.T) {
		m := MustNewMoney(1299, EUR)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":1299,"currency":"EUR"}`, string(data))

		var decoded Money
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, m.Equals(decoded))
	})
}

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, USD, ParseCurrency(" usd "))
	assert.Equal(t, GBP, ParseCurrency("gbp"))
	assert.True(t, ParseCurrency("eur").IsValid())
	assert.False(t, Currency("").IsValid())
	assert.False(t, Currency("12X").IsValid())
}
