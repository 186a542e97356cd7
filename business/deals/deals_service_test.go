//go:build !integration

package deals

import (
	"context"
	"errors"
	"myBestDeals/domain"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu       sync.Mutex
	products map[string][]domain.ProductRecord
	failures map[string]error
	limits   map[string]int
}

func (f *fakeSource) ForEachCandidate(ctx context.Context, platform string, limit int, fn func(domain.ProductRecord)) error {
	f.mu.Lock()
	if f.limits == nil {
		f.limits = make(map[string]int)
	}
	f.limits[platform] = limit
	err := f.failures[platform]
	records := f.products[platform]
	f.mu.Unlock()

	if err != nil {
		return err
	}

	for i, p := range records {
		if i >= limit {
			break
		}
		fn(p)
	}
	return nil
}

func withRating(p domain.ProductRecord, r float64) domain.ProductRecord {
	p.Ratings.Average = &r
	return p
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Platforms = []string{domain.PlatformAmazon, domain.PlatformFlipkart}
	return cfg
}

func TestGetTopDeals_RanksEachPlatform(t *testing.T) {
	src := &fakeSource{
		products: map[string][]domain.ProductRecord{
			domain.PlatformAmazon: {
				withRating(product("A1", 800, 1000), 4.2),
				product("A2", 100, 1000),
				product("A3", 1000, 1000),
				product("A4", 990, 1000),
			},
			domain.PlatformFlipkart: {
				product("F1", 50, 100),
				product("F2", 200, 100),
			},
		},
	}

	svc := NewDealService(src, testConfig())

	got, err := svc.GetTopDeals(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []string{"A2", "A1"}, ids(got[domain.PlatformAmazon]))
	assert.InDelta(t, 29.8, got[domain.PlatformAmazon][1].Score, 1e-9)
	assert.Equal(t, []string{"F1"}, ids(got[domain.PlatformFlipkart]))

	assert.Equal(t, 200, src.limits[domain.PlatformAmazon])
}

func TestGetTopDeals_PlatformFailureDegrades(t *testing.T) {
	src := &fakeSource{
		products: map[string][]domain.ProductRecord{
			domain.PlatformFlipkart: {product("F1", 50, 100)},
		},
		failures: map[string]error{
			domain.PlatformAmazon: errors.New("server selection timeout"),
		},
	}

	svc := NewDealService(src, testConfig())

	got, err := svc.GetTopDeals(context.Background(), 10)
	require.NoError(t, err)

	amazon, ok := got[domain.PlatformAmazon]
	require.True(t, ok)
	assert.NotNil(t, amazon)
	assert.Empty(t, amazon)
	assert.Len(t, got[domain.PlatformFlipkart], 1)
}

func TestGetTopDeals_ScanLimitHonoured(t *testing.T) {
	cfg := testConfig()
	cfg.ScanLimit = 2

	src := &fakeSource{
		products: map[string][]domain.ProductRecord{
			domain.PlatformAmazon: {
				product("A1", 90, 100),
				product("A2", 80, 100),
				product("A3", 10, 100),
			},
		},
	}

	got, err := NewDealService(src, cfg).GetTopDeals(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"A2", "A1"}, ids(got[domain.PlatformAmazon]))
	assert.Empty(t, got[domain.PlatformFlipkart])
}

func TestGetTopDeals_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDealService(&fakeSource{}, testConfig()).GetTopDeals(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopDealsForPlatform_Unknown(t *testing.T) {
	svc := NewDealService(&fakeSource{}, testConfig())

	_, err := svc.TopDealsForPlatform(context.Background(), "ebay", 5)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestNewDealService_FillsDefaults(t *testing.T) {
	svc := NewDealService(&fakeSource{}, Config{Platforms: []string{"amazon"}})

	assert.Equal(t, DefaultWeights(), svc.cfg.Weights)
	assert.Equal(t, defaultScanLimit, svc.cfg.ScanLimit)
	assert.Equal(t, []string{"amazon"}, svc.Platforms())
}

func TestGetTopDeals_CountsCandidates(t *testing.T) {
	src := &fakeSource{
		products: map[string][]domain.ProductRecord{
			"meesho": {
				product("M1", 10, 100),
				product("M2", 100, 100),
				product("M3", 20, 100),
			},
		},
	}

	cfg := testConfig()
	cfg.Platforms = []string{"meesho"}

	examined := testutil.ToFloat64(CandidatesExaminedTotal.WithLabelValues("meesho"))
	admitted := testutil.ToFloat64(CandidatesAdmittedTotal.WithLabelValues("meesho"))

	got, err := NewDealService(src, cfg).GetTopDeals(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, ids(got["meesho"]))

	assert.Equal(t, examined+3, testutil.ToFloat64(CandidatesExaminedTotal.WithLabelValues("meesho")))
	assert.Equal(t, admitted+1, testutil.ToFloat64(CandidatesAdmittedTotal.WithLabelValues("meesho")))
}
