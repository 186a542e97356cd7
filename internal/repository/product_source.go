package repository

import (
	"context"
	"fmt"
	"myBestDeals/business/deals"
	"myBestDeals/internal/repository/mongodb"
	"myBestDeals/internal/repository/postgres"
	"myBestDeals/pkg/config"
	"myBestDeals/pkg/database"
)

// CloseFunc releases the connection behind a product source.
type CloseFunc func(ctx context.Context) error

// OpenProductSource connects to the configured store and returns the
// matching product source.
func OpenProductSource(cfg *config.Config) (deals.ProductSource, CloseFunc, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		client, err := database.NewMongoClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		source := mongodb.NewProductSource(client.Database(cfg.Mongo.Database), cfg.Mongo.CollectionSuffix)
		return source, func(ctx context.Context) error {
			return database.CloseMongoClient(ctx, client)
		}, nil

	case config.StoreDriverPostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewProductRepository(db), func(context.Context) error {
			return database.ClosePostgres(db)
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// DealsConfig maps the application config onto the ranking engine config.
func DealsConfig(cfg *config.Config) deals.Config {
	return deals.Config{
		Weights: deals.Weights{
			Discount:    cfg.Scoring.WeightDiscount,
			Savings:     cfg.Scoring.WeightSavings,
			Rating:      cfg.Scoring.WeightRating,
			SavingsNorm: cfg.Scoring.SavingsNorm,
			SavingsCap:  cfg.Scoring.SavingsCap,
		},
		Platforms:   cfg.Store.Platforms,
		ScanLimit:   cfg.Store.ScanLimit,
		Concurrency: cfg.Deals.Concurrency,
	}
}
