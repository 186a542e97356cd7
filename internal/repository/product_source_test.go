package repository

import (
	"myBestDeals/pkg/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealsConfig(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{
			ScanLimit: 150,
			Platforms: []string{"amazon"},
		},
		Scoring: config.ScoringConfig{
			WeightDiscount: 0.6,
			WeightSavings:  0.2,
			WeightRating:   0.2,
			SavingsNorm:    25,
			SavingsCap:     80,
		},
		Deals: config.DealsConfig{Concurrency: 4},
	}

	got := DealsConfig(cfg)

	assert.Equal(t, 0.6, got.Weights.Discount)
	assert.Equal(t, 25.0, got.Weights.SavingsNorm)
	assert.Equal(t, 80.0, got.Weights.SavingsCap)
	assert.Equal(t, []string{"amazon"}, got.Platforms)
	assert.Equal(t, 150, got.ScanLimit)
	assert.Equal(t, 4, got.Concurrency)
}

func TestOpenProductSource_UnknownDriver(t *testing.T) {
	_, _, err := OpenProductSource(&config.Config{Store: config.StoreConfig{Driver: "dynamo"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dynamo")
}
