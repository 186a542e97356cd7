package deals

import "myBestDeals/domain"

// Weights controls how the three sub-scores are combined.
type Weights struct {
	Discount float64
	Savings  float64
	Rating   float64

	// currency units of savings per score point, capped at SavingsCap points
	SavingsNorm float64
	SavingsCap  float64
}

type Config struct {
	Weights Weights

	// Platforms are ranked independently, in this order.
	Platforms []string

	// ScanLimit caps the candidates read per platform and cycle.
	ScanLimit int

	// max platforms retrieved in parallel
	Concurrency int
}

const (
	defaultWeightDiscount = 0.5
	defaultWeightSavings  = 0.3
	defaultWeightRating   = 0.2
	defaultSavingsNorm    = 20.0
	defaultSavingsCap     = 100.0
	defaultScanLimit      = 200
	defaultConcurrency    = 2
)

func DefaultWeights() Weights {
	return Weights{
		Discount:    defaultWeightDiscount,
		Savings:     defaultWeightSavings,
		Rating:      defaultWeightRating,
		SavingsNorm: defaultSavingsNorm,
		SavingsCap:  defaultSavingsCap,
	}
}

func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights(),
		Platforms:   []string{domain.PlatformAmazon, domain.PlatformFlipkart},
		ScanLimit:   defaultScanLimit,
		Concurrency: defaultConcurrency,
	}
}

// withDefaults fills zero values so a partially populated Config stays usable.
func (c Config) withDefaults() Config {
	if c.Weights == (Weights{}) {
		c.Weights = DefaultWeights()
	}
	if c.Weights.SavingsNorm <= 0 {
		c.Weights.SavingsNorm = defaultSavingsNorm
	}
	if c.Weights.SavingsCap <= 0 {
		c.Weights.SavingsCap = defaultSavingsCap
	}
	if c.ScanLimit <= 0 {
		c.ScanLimit = defaultScanLimit
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	return c
}
