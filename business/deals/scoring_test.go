//go:build !integration

package deals

import (
	"math"
	"myBestDeals/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func product(id string, current, original float64) domain.ProductRecord {
	return domain.ProductRecord{
		Platform:   "amazon",
		PlatformID: id,
		Pricing: domain.Pricing{
			CurrentPrice:  &domain.Money{Amount: current},
			OriginalPrice: &domain.Money{Amount: original},
		},
	}
}

func TestScore_DerivedDiscount(t *testing.T) {
	p := product("B0001", 800, 1000)
	p.Ratings.Average = f64(4.2)

	got := NewScorer(DefaultWeights()).Score(p)

	// 20*0.5 + min(100, 200/20)*0.3 + (4.2/5*100)*0.2
	assert.InDelta(t, 29.8, got, 1e-9)
}

func TestScore_StatedDiscountWins(t *testing.T) {
	p := product("B0001", 800, 1000)
	p.Pricing.DiscountPercentage = f64(40)

	got := NewScorer(DefaultWeights()).Score(p)

	// rating defaults to 3.0
	assert.InDelta(t, 40*0.5+10*0.3+60*0.2, got, 1e-9)
}

func TestScore_SavingsCapped(t *testing.T) {
	p := product("B0001", 1000, 100000)
	p.Pricing.DiscountPercentage = f64(0)
	p.Ratings.Average = f64(0)

	got := NewScorer(DefaultWeights()).Score(p)

	assert.InDelta(t, 100*0.3, got, 1e-9)
}

func TestScore_Ineligible(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	tests := []struct {
		name string
		p    domain.ProductRecord
	}{
		{"current equals original", product("a", 500, 500)},
		{"current above original", product("a", 600, 500)},
		{"zero current", product("a", 0, 500)},
		{"negative original", product("a", 100, -5)},
		{"missing current", domain.ProductRecord{Pricing: domain.Pricing{OriginalPrice: &domain.Money{Amount: 10}}}},
		{"missing original", domain.ProductRecord{Pricing: domain.Pricing{CurrentPrice: &domain.Money{Amount: 10}}}},
		{"empty record", domain.ProductRecord{}},
		{"nan price", product("a", math.NaN(), 500)},
		{"infinite original", product("a", 10, math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, scorer.Score(tt.p))
		})
	}
}

func TestScore_MalformedDiscountDoesNotPanic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	p := product("a", 10, 20)
	p.Pricing.DiscountPercentage = f64(450)
	assert.Greater(t, scorer.Score(p), 200.0)

	p.Pricing.DiscountPercentage = f64(math.NaN())
	assert.Zero(t, scorer.Score(p))

	p.Pricing.DiscountPercentage = f64(-1000)
	assert.Zero(t, scorer.Score(p))
}

func TestScore_Monotonic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	t.Run("discount", func(t *testing.T) {
		prev := -1.0
		for _, d := range []float64{0, 5, 20, 50, 90} {
			p := product("a", 500, 1000)
			p.Pricing.DiscountPercentage = f64(d)
			s := scorer.Score(p)
			assert.Greater(t, s, prev)
			prev = s
		}
	})

	t.Run("savings", func(t *testing.T) {
		prev := -1.0
		for _, original := range []float64{200, 400, 800, 1600} {
			p := product("a", 100, original)
			p.Pricing.DiscountPercentage = f64(10)
			s := scorer.Score(p)
			assert.Greater(t, s, prev)
			prev = s
		}
	})

	t.Run("rating", func(t *testing.T) {
		prev := -1.0
		for _, r := range []float64{1, 2.5, 3, 4.4, 5} {
			p := product("a", 500, 1000)
			p.Ratings.Average = f64(r)
			s := scorer.Score(p)
			assert.Greater(t, s, prev)
			prev = s
		}
	})
}
