package domain

import (
	"strconv"
	"time"
)

// CREATE TABLE public.scraped_products (
//     id                      BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     platform                TEXT NOT NULL,
//     platform_id             TEXT,
//     product_name            TEXT,
//     url                     TEXT,
//     image_url               TEXT,
//     best_sellers_rank       TEXT,
//     current_price_amount    NUMERIC,
//     current_price_formatted TEXT,
//     original_price_amount   NUMERIC,
//     original_price_formatted TEXT,
//     discount_percentage     NUMERIC,
//     rating_average          NUMERIC,
//     rating_count            BIGINT,
//     scraped_at              TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE INDEX scraped_products_platform_idx ON public.scraped_products (platform);

// ProductRow is the relational shape of a scraped product. Nullable columns
// are pointers so that "absent" survives the round trip.
type ProductRow struct {
	ID                     uint64    `gorm:"primaryKey;autoIncrement"`
	Platform               string    `gorm:"column:platform;type:text;index"`
	PlatformID             string    `gorm:"column:platform_id;type:text"`
	ProductName            string    `gorm:"column:product_name;type:text"`
	URL                    string    `gorm:"column:url;type:text"`
	ImageURL               string    `gorm:"column:image_url;type:text"`
	BestSellersRank        string    `gorm:"column:best_sellers_rank;type:text"`
	CurrentPriceAmount     *float64  `gorm:"column:current_price_amount;type:numeric"`
	CurrentPriceFormatted  string    `gorm:"column:current_price_formatted;type:text"`
	OriginalPriceAmount    *float64  `gorm:"column:original_price_amount;type:numeric"`
	OriginalPriceFormatted string    `gorm:"column:original_price_formatted;type:text"`
	DiscountPercentage     *float64  `gorm:"column:discount_percentage;type:numeric"`
	RatingAverage          *float64  `gorm:"column:rating_average;type:numeric"`
	RatingCount            *int64    `gorm:"column:rating_count"`
	ScrapedAt              time.Time `gorm:"column:scraped_at"`
}

func (ProductRow) TableName() string {
	return "scraped_products"
}

// Record converts the row into a ProductRecord.
func (r ProductRow) Record() ProductRecord {
	p := ProductRecord{
		Platform:        r.Platform,
		PlatformID:      r.PlatformID,
		Name:            r.ProductName,
		URL:             r.URL,
		BestSellersRank: r.BestSellersRank,
		Pricing: Pricing{
			DiscountPercentage: r.DiscountPercentage,
		},
		Ratings: Ratings{
			Average: r.RatingAverage,
			Count:   r.RatingCount,
		},
	}

	if r.PlatformID == "" {
		p.PlatformID = "row-" + strconv.FormatUint(r.ID, 10)
	}
	if r.ImageURL != "" {
		p.ImageURLs = []string{r.ImageURL}
	}
	if r.CurrentPriceAmount != nil {
		p.Pricing.CurrentPrice = &Money{Amount: *r.CurrentPriceAmount, Formatted: r.CurrentPriceFormatted}
	}
	if r.OriginalPriceAmount != nil {
		p.Pricing.OriginalPrice = &Money{Amount: *r.OriginalPriceAmount, Formatted: r.OriginalPriceFormatted}
	}

	return p
}
