package domain

import "errors"

// DefaultRating is used whenever a product carries no average rating.
const DefaultRating = 3.0

var (
	ErrUnknownPlatform  = errors.New("unknown platform")
	ErrStoreUnavailable = errors.New("product store unavailable")
)

// Money is a price as stored by the scrapers: a numeric amount plus the
// display string of the source site (e.g. "₹1,299").
type Money struct {
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted,omitempty"`
}

type Pricing struct {
	CurrentPrice       *Money   `json:"current_price,omitempty"`
	OriginalPrice      *Money   `json:"original_price,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`
}

type Ratings struct {
	Average *float64 `json:"average,omitempty"`
	Count   *int64   `json:"count,omitempty"`
}

// ProductRecord is a scraped product after the store boundary parse. Every
// optional field of the source document is a pointer or a zero value.
type ProductRecord struct {
	Platform        string   `json:"platform"`
	PlatformID      string   `json:"platform_id"`
	Name            string   `json:"name,omitempty"`
	URL             string   `json:"url,omitempty"`
	ImageURLs       []string `json:"image_urls,omitempty"`
	BestSellersRank string   `json:"best_sellers_rank,omitempty"`
	Pricing         Pricing  `json:"pricing"`
	Ratings         Ratings  `json:"ratings"`
}

// CurrentAmount returns the current price amount, or 0 when absent.
func (p ProductRecord) CurrentAmount() float64 {
	if p.Pricing.CurrentPrice == nil {
		return 0
	}
	return p.Pricing.CurrentPrice.Amount
}

// OriginalAmount returns the original price amount, or 0 when absent.
func (p ProductRecord) OriginalAmount() float64 {
	if p.Pricing.OriginalPrice == nil {
		return 0
	}
	return p.Pricing.OriginalPrice.Amount
}

// Rating returns the average rating, falling back to DefaultRating.
func (p ProductRecord) Rating() float64 {
	if p.Ratings.Average == nil {
		return DefaultRating
	}
	return *p.Ratings.Average
}

// Discount returns the stated discount percentage, or derives it from the
// two prices. It returns 0 when neither is possible.
func (p ProductRecord) Discount() float64 {
	if p.Pricing.DiscountPercentage != nil {
		return *p.Pricing.DiscountPercentage
	}

	original := p.OriginalAmount()
	if original <= 0 {
		return 0
	}

	return (original - p.CurrentAmount()) / original * 100
}

// Savings is original minus current price, 0 when either is missing.
func (p ProductRecord) Savings() float64 {
	if p.Pricing.CurrentPrice == nil || p.Pricing.OriginalPrice == nil {
		return 0
	}
	return p.OriginalAmount() - p.CurrentAmount()
}

// ImageURL returns the first known image reference.
func (p ProductRecord) ImageURL() string {
	for _, u := range p.ImageURLs {
		if u != "" {
			return u
		}
	}
	return ""
}
