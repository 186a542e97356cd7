package mongodb

import (
	"fmt"
	"myBestDeals/domain"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// productProjection lists the fields read from the scraper collections.
var productProjection = bson.D{
	{Key: "platform", Value: 1},
	{Key: "platform_id", Value: 1},
	{Key: "basic_info.name", Value: 1},
	{Key: "pricing", Value: 1},
	{Key: "ratings", Value: 1},
	{Key: "url", Value: 1},
	{Key: "image", Value: 1},
	{Key: "images", Value: 1},
	{Key: "sales_info.best_sellers_rank", Value: 1},
}

// candidateFilter keeps documents that carry two positive price amounts.
var candidateFilter = bson.D{
	{Key: "pricing.current_price.amount", Value: bson.D{{Key: "$gt", Value: 0}}},
	{Key: "pricing.original_price.amount", Value: bson.D{{Key: "$gt", Value: 0}}},
}

// parseProduct converts a raw scraper document into a ProductRecord. Fields
// with an unexpected BSON type are treated as missing. The platform falls
// back to the collection's platform, the platform id to the document _id.
func parseProduct(raw bson.Raw, platform string) (domain.ProductRecord, error) {
	if err := raw.Validate(); err != nil {
		return domain.ProductRecord{}, fmt.Errorf("invalid product document: %w", err)
	}

	p := domain.ProductRecord{
		Platform:        stringField(raw, "platform"),
		PlatformID:      idField(raw.Lookup("platform_id")),
		Name:            stringField(raw, "basic_info", "name"),
		URL:             stringField(raw, "url"),
		BestSellersRank: stringField(raw, "sales_info", "best_sellers_rank"),
	}

	if p.Platform == "" {
		p.Platform = platform
	}
	if p.PlatformID == "" {
		p.PlatformID = idField(raw.Lookup("_id"))
	}

	p.Pricing.CurrentPrice = moneyField(raw, "pricing", "current_price")
	p.Pricing.OriginalPrice = moneyField(raw, "pricing", "original_price")
	if pct, ok := number(raw.Lookup("pricing", "discount", "percentage")); ok {
		p.Pricing.DiscountPercentage = &pct
	}

	if avg, ok := number(raw.Lookup("ratings", "average")); ok {
		p.Ratings.Average = &avg
	}
	if count, ok := number(raw.Lookup("ratings", "count")); ok {
		c := int64(count)
		p.Ratings.Count = &c
	}

	if u := stringField(raw, "image", "url"); u != "" {
		p.ImageURLs = append(p.ImageURLs, u)
	}
	if arr, ok := raw.Lookup("images").ArrayOK(); ok {
		values, err := arr.Values()
		if err == nil {
			for _, v := range values {
				doc, ok := v.DocumentOK()
				if !ok {
					continue
				}
				if u, ok := doc.Lookup("url").StringValueOK(); ok && u != "" {
					p.ImageURLs = append(p.ImageURLs, u)
				}
			}
		}
	}

	return p, nil
}

func moneyField(raw bson.Raw, path ...string) *domain.Money {
	doc, ok := raw.Lookup(path...).DocumentOK()
	if !ok {
		return nil
	}

	amount, ok := number(doc.Lookup("amount"))
	if !ok {
		return nil
	}

	m := &domain.Money{Amount: amount}
	m.Formatted, _ = doc.Lookup("formatted").StringValueOK()

	return m
}

func stringField(raw bson.Raw, path ...string) string {
	s, _ := raw.Lookup(path...).StringValueOK()
	return strings.TrimSpace(s)
}

// number reads any numeric BSON value, including numeric strings the
// scrapers sometimes leave behind ("1,299.00").
func number(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bson.TypeDouble:
		return v.Double(), true
	case bson.TypeInt32:
		return float64(v.Int32()), true
	case bson.TypeInt64:
		return float64(v.Int64()), true
	case bson.TypeDecimal128:
		d, err := decimal.NewFromString(v.Decimal128().String())
		if err != nil {
			return 0, false
		}
		f, _ := d.Float64()
		return f, true
	case bson.TypeString:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v.StringValue()), ",", ""))
		if err != nil {
			return 0, false
		}
		f, _ := d.Float64()
		return f, true
	default:
		return 0, false
	}
}

func idField(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	default:
		return ""
	}
}
