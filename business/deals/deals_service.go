package deals

import (
	"context"
	"fmt"
	"myBestDeals/domain"
	"myBestDeals/pkg/logger"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProductSource streams candidate products of one platform. Implementations
// only hand out records whose current and original price amounts are
// positive, and stop after limit records.
type ProductSource interface {
	ForEachCandidate(ctx context.Context, platform string, limit int, fn func(domain.ProductRecord)) error
}

type DealService struct {
	source ProductSource
	scorer Scorer
	cfg    Config
}

func NewDealService(source ProductSource, cfg Config) *DealService {
	cfg = cfg.withDefaults()
	return &DealService{
		source: source,
		scorer: NewScorer(cfg.Weights),
		cfg:    cfg,
	}
}

func (s *DealService) Platforms() []string {
	return slices.Clone(s.cfg.Platforms)
}

// GetTopDeals ranks every configured platform independently and returns the
// best limit deals of each. A platform whose retrieval fails maps to an empty
// list; only an already cancelled context fails the whole call.
func (s *DealService) GetTopDeals(ctx context.Context, limit int) (map[string][]domain.RankedDeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	cycleID := uuid.NewString()

	results := make([][]domain.RankedDeal, len(s.cfg.Platforms))

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)

	for i, platform := range s.cfg.Platforms {
		g.Go(func() error {
			top, err := s.TopDealsForPlatform(ctx, platform, limit)
			if err != nil {
				RetrievalFailuresTotal.WithLabelValues(platform).Inc()
				logger.Error("failed to retrieve platform deals",
					"cycle_id", cycleID,
					"platform", platform,
					"error", err,
				)
				top = []domain.RankedDeal{}
			}
			results[i] = top
			return nil
		})
	}

	_ = g.Wait()

	out := make(map[string][]domain.RankedDeal, len(s.cfg.Platforms))
	for i, platform := range s.cfg.Platforms {
		out[platform] = results[i]
	}

	elapsed := time.Since(start)
	CycleDuration.Observe(elapsed.Seconds())
	logger.Debug("top deals cycle finished",
		"cycle_id", cycleID,
		"limit", limit,
		"platforms", len(out),
		"elapsed", elapsed,
	)

	return out, nil
}

// TopDealsForPlatform runs one scoring cycle for a single platform with a
// fresh selector.
func (s *DealService) TopDealsForPlatform(ctx context.Context, platform string, limit int) ([]domain.RankedDeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if !slices.Contains(s.cfg.Platforms, platform) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPlatform, platform)
	}

	selector := NewSelector(limit)
	examined, admitted := 0, 0

	err := s.source.ForEachCandidate(ctx, platform, s.cfg.ScanLimit, func(p domain.ProductRecord) {
		examined++
		if selector.Admit(p, s.scorer.Score(p)) {
			admitted++
		}
	})

	CandidatesExaminedTotal.WithLabelValues(platform).Add(float64(examined))
	CandidatesAdmittedTotal.WithLabelValues(platform).Add(float64(admitted))

	if err != nil {
		return nil, fmt.Errorf("load %s candidates: %w", platform, err)
	}

	return selector.Drain(), nil
}
