package kernel_test

import (
	"testing"

	"agrilink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		minorUnits int64
		wantErr    bool
	}{
		{name: "two decimals", input: "120.00", minorUnits: 12000},
		{name: "no decimals", input: "8500", minorUnits: 850000},
		{name: "one decimal", input: "6.5", minorUnits: 650},
		{name: "cents only", input: "0.05", minorUnits: 5},
		{name: "zero", input: "0", minorUnits: 0},
		{name: "whitespace", input: " 42.10 ", minorUnits: 4210},
		{name: "negative", input: "-3.00", wantErr: true},
		{name: "negative below one", input: "-0.50", wantErr: true},
		{name: "three decimals", input: "1.005", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "trailing dot", input: "12.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := kernel.ParseMoney(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minorUnits, m.MinorUnits())
		})
	}
}

func TestNewMoneyFromMinorUnits(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromMinorUnits(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := kernel.NewMoneyFromMinorUnits(-1)
		require.Error(t, err)
	})
}

func TestMoney_PlatformFee(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		wantKobo int64
	}{
		{name: "scenario price", price: "120.00", wantKobo: 600},
		{name: "round half up", price: "0.10", wantKobo: 1}, // 0.005 rounds up
		{name: "rounds down below half", price: "0.09", wantKobo: 0},
		{name: "large amount", price: "65000", wantKobo: 325000},
		{name: "odd kobo", price: "1.23", wantKobo: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := kernel.ParseMoney(tt.price)
			require.NoError(t, err)

			fee := price.PlatformFee()
			assert.Equal(t, tt.wantKobo, fee.MinorUnits())
		})
	}
}

func TestMoney_PlatformFee_IsStable(t *testing.T) {
	// The fee derived from a given amount never changes between calls;
	// there is no mutating API on Money at all.
	price, err := kernel.ParseMoney("199.99")
	require.NoError(t, err)

	first := price.PlatformFee()
	for range 10 {
		assert.True(t, first.IsEqual(price.PlatformFee()))
	}
	assert.Equal(t, int64(1000), first.MinorUnits()) // 9.9995 -> 10.00
}

func TestMoney_Compare(t *testing.T) {
	low, _ := kernel.ParseMoney("99.99")
	high, _ := kernel.ParseMoney("100.00")

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.True(t, low.IsEqual(low))
	assert.False(t, low.IsEqual(high))
}

func TestMoney_String(t *testing.T) {
	m, err := kernel.ParseMoney("7.5")
	require.NoError(t, err)
	assert.Equal(t, "7.50", m.String())

	zero := kernel.Money{}
	assert.Equal(t, "0.00", zero.String())
}
