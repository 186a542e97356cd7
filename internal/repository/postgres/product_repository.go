package postgres

import (
	"context"
	"fmt"
	"myBestDeals/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func candidateQuery(tx *gorm.DB, platform string, limit int) *gorm.DB {
	return tx.
		Model(&domain.ProductRow{}).
		Where("platform = ?", platform).
		Where("current_price_amount > 0 AND original_price_amount > 0").
		Order("id").
		Limit(limit)
}

// ForEachCandidate streams at most limit rows of the platform with positive
// prices, one row in memory at a time.
func (r *ProductRepository) ForEachCandidate(ctx context.Context, platform string, limit int, fn func(domain.ProductRecord)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	rows, err := candidateQuery(r.DB.WithContext(ctx), platform, limit).Rows()
	if err != nil {
		return fmt.Errorf("%w: query %s products: %w", domain.ErrStoreUnavailable, platform, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.ProductRow
		if err := r.DB.ScanRows(rows, &row); err != nil {
			return fmt.Errorf("failed to scan %s product: %w", platform, err)
		}
		fn(row.Record())
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s products: %w", platform, err)
	}

	return nil
}
