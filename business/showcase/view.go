package showcase

import (
	"math"
	"myBestDeals/domain"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	unnamedProduct = "Unnamed"
	missingPrice   = "₹-"
	currencySymbol = "₹"
)

// DealView is a ranked deal flattened for rendering.
type DealView struct {
	Score         float64  `json:"score"`
	PlatformID    string   `json:"platform_id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	ImageURL      string   `json:"image_url,omitempty"`
	CurrentPrice  string   `json:"current_price"`
	OriginalPrice string   `json:"original_price"`
	Discount      float64  `json:"discount"`
	Savings       string   `json:"savings"`
	Rating        *float64 `json:"rating,omitempty"`
	Stars         string   `json:"stars,omitempty"`
}

func NewDealView(d domain.RankedDeal) DealView {
	p := d.Product

	v := DealView{
		Score:         round(d.Score, 2),
		PlatformID:    p.PlatformID,
		Name:          p.Name,
		URL:           p.URL,
		ImageURL:      p.ImageURL(),
		CurrentPrice:  formatMoney(p.Pricing.CurrentPrice),
		OriginalPrice: formatMoney(p.Pricing.OriginalPrice),
		Discount:      round(p.Discount(), 1),
		Savings:       toDecimal(p.Savings()).StringFixed(2),
		Rating:        p.Ratings.Average,
	}

	if v.Name == "" {
		v.Name = unnamedProduct
	}
	if v.URL == "" {
		v.URL = "#"
	}
	if v.Rating != nil {
		v.Stars = Stars(*v.Rating)
	}

	return v
}

func NewDealViews(deals []domain.RankedDeal) []DealView {
	out := make([]DealView, 0, len(deals))
	for _, d := range deals {
		out = append(out, NewDealView(d))
	}
	return out
}

// Stars renders a 0..5 rating as filled and empty stars.
func Stars(rating float64) string {
	filled := int(math.Round(rating))
	filled = max(0, min(5, filled))

	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

func formatMoney(m *domain.Money) string {
	if m == nil {
		return missingPrice
	}
	if m.Formatted != "" {
		return m.Formatted
	}
	return currencySymbol + toDecimal(m.Amount).StringFixed(2)
}

func round(f float64, places int32) float64 {
	r, _ := toDecimal(f).Round(places).Float64()
	return r
}

// toDecimal maps NaN and infinities to zero, decimal cannot represent them.
func toDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
