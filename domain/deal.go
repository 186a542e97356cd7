package domain

// RankedDeal pairs a product with its desirability score.
type RankedDeal struct {
	Score   float64       `json:"score"`
	Product ProductRecord `json:"product"`
}

const (
	PlatformAmazon   = "amazon"
	PlatformFlipkart = "flipkart"
)
