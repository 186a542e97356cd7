package mongodb

import (
	"context"
	"fmt"
	"myBestDeals/domain"
	"myBestDeals/pkg/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ProductSource reads scraped products from one collection per platform,
// named "<platform><suffix>" (amazon_products, flipkart_products, ...).
type ProductSource struct {
	db               *mongo.Database
	collectionSuffix string
}

func NewProductSource(db *mongo.Database, collectionSuffix string) *ProductSource {
	return &ProductSource{
		db:               db,
		collectionSuffix: collectionSuffix,
	}
}

func (s *ProductSource) collection(platform string) *mongo.Collection {
	return s.db.Collection(platform + s.collectionSuffix)
}

func candidateFindOptions(limit int) *options.FindOptionsBuilder {
	return options.Find().
		SetProjection(productProjection).
		SetLimit(int64(limit))
}

// ForEachCandidate streams at most limit documents with positive prices. A
// document that cannot be parsed is skipped, it never aborts the stream.
func (s *ProductSource) ForEachCandidate(ctx context.Context, platform string, limit int, fn func(domain.ProductRecord)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	cursor, err := s.collection(platform).Find(ctx, candidateFilter, candidateFindOptions(limit))
	if err != nil {
		return fmt.Errorf("%w: find %s products: %w", domain.ErrStoreUnavailable, platform, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		p, err := parseProduct(cursor.Current, platform)
		if err != nil {
			logger.Warn("skipping malformed product document", "platform", platform, "error", err)
			continue
		}
		fn(p)
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("iterate %s products: %w", platform, err)
	}

	return nil
}
