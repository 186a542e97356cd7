package deals

import (
	"math"
	"myBestDeals/domain"
)

// Scorer turns a product into a desirability score. It has no state besides
// its weights and is safe for concurrent use.
type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) Scorer {
	if w.SavingsNorm <= 0 {
		w.SavingsNorm = defaultSavingsNorm
	}
	if w.SavingsCap <= 0 {
		w.SavingsCap = defaultSavingsCap
	}
	return Scorer{weights: w}
}

// Score returns
//
//	discount*Wd + min(cap, savings/norm)*Ws + (rating/5*100)*Wr
//
// or 0 for a product that is not a deal: a missing or non-positive price, or
// a current price that is not below the original one. Malformed numbers never
// surface as errors, a non-finite result is reported as 0.
func (s Scorer) Score(p domain.ProductRecord) float64 {
	if p.Pricing.CurrentPrice == nil || p.Pricing.OriginalPrice == nil {
		return 0
	}

	current := p.Pricing.CurrentPrice.Amount
	original := p.Pricing.OriginalPrice.Amount
	if !finite(current) || !finite(original) {
		return 0
	}
	if current <= 0 || original <= 0 || current >= original {
		return 0
	}

	discount := p.Discount()
	savings := original - current
	rating := p.Rating()

	discountScore := discount * s.weights.Discount
	savingsScore := math.Min(s.weights.SavingsCap, savings/s.weights.SavingsNorm) * s.weights.Savings
	ratingScore := (rating / 5 * 100) * s.weights.Rating

	score := discountScore + savingsScore + ratingScore
	if !finite(score) || score < 0 {
		return 0
	}

	return score
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
