package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() ServiceRates {
	return ServiceRates{
		Iron:        decimal.NewFromFloat(10),
		WashAndIron: decimal.NewFromFloat(20),
		DryClean:    decimal.NewFromFloat(50),
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with three service rates", func(t *testing.T) {
		p, err := NewProduct("Shirt", "Garments", "8901234567890", testRates())
		require.NoError(t, err)
		assert.Equal(t, "Shirt", p.Name)
		assert.Equal(t, ProductStatusActive, p.Status)
		assert.False(t, p.TrackStock)
		assert.True(t, p.IronRate.Equal(decimal.NewFromInt(10)))
		assert.True(t, p.WashAndIronRate.Equal(decimal.NewFromInt(20)))
		assert.True(t, p.DryCleanRate.Equal(decimal.NewFromInt(50)))
	})

	t.Run("fails with empty name", func(t *testing.T) {
		p, err := NewProduct("  ", "Garments", "8901234567890", testRates())
		assert.Nil(t, p)
		assert.Error(t, err)
	})

	t.Run("fails with empty barcode", func(t *testing.T) {
		p, err := NewProduct("Shirt", "Garments", "", testRates())
		assert.Nil(t, p)
		assert.Error(t, err)
	})

	t.Run("fails with negative rate", func(t *testing.T) {
		rates := testRates()
		rates.DryClean = decimal.NewFromInt(-1)
		p, err := NewProduct("Shirt", "Garments", "8901234567890", rates)
		assert.Nil(t, p)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestProduct_RateFor(t *testing.T) {
	p, err := NewProduct("Shirt", "Garments", "8901234567890", testRates())
	require.NoError(t, err)

	t.Run("selects rate by tier", func(t *testing.T) {
		assert.True(t, p.RateFor(ServiceTierIron).Equal(decimal.NewFromInt(10)))
		assert.True(t, p.RateFor(ServiceTierWashAndIron).Equal(decimal.NewFromInt(20)))
		assert.True(t, p.RateFor(ServiceTierDryClean).Equal(decimal.NewFromInt(50)))
	})

	t.Run("unknown tier fails closed to zero", func(t *testing.T) {
		assert.True(t, p.RateFor(ServiceTier("steamPress")).IsZero())
	})
}

func TestProduct_SetRates(t *testing.T) {
	p, err := NewProduct("Shirt", "Garments", "8901234567890", testRates())
	require.NoError(t, err)
	initialVersion := p.Version

	t.Run("replaces rates", func(t *testing.T) {
		err := p.SetRates(ServiceRates{
			Iron:        decimal.NewFromInt(12),
			WashAndIron: decimal.NewFromInt(22),
			DryClean:    decimal.NewFromInt(55),
		})
		require.NoError(t, err)
		assert.True(t, p.RateFor(ServiceTierIron).Equal(decimal.NewFromInt(12)))
		assert.Equal(t, initialVersion+1, p.Version)
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		err := p.SetRates(ServiceRates{Iron: decimal.NewFromInt(-5)})
		assert.Error(t, err)
	})
}

func TestProduct_EnableStockTracking(t *testing.T) {
	p, err := NewProduct("Shirt", "Garments", "8901234567890", testRates())
	require.NoError(t, err)

	t.Run("enables tracking with initial stock", func(t *testing.T) {
		require.NoError(t, p.EnableStockTracking(decimal.NewFromInt(40)))
		assert.True(t, p.TrackStock)
		assert.True(t, p.Stock.Equal(decimal.NewFromInt(40)))
	})

	t.Run("rejects negative initial stock", func(t *testing.T) {
		assert.Error(t, p.EnableStockTracking(decimal.NewFromInt(-1)))
	})
}

func TestServiceTier_IsValid(t *testing.T) {
	for _, tier := range AllServiceTiers() {
		assert.True(t, tier.IsValid())
	}
	assert.False(t, ServiceTier("wash").IsValid())
	assert.False(t, ServiceTier("").IsValid())
}
