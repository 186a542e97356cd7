package rest

import (
	"context"
	"encoding/json"
	"errors"
	"myBestDeals/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDealsService struct {
	results   map[string][]domain.RankedDeal
	err       error
	lastLimit int
}

func (f *fakeDealsService) GetTopDeals(ctx context.Context, limit int) (map[string][]domain.RankedDeal, error) {
	f.lastLimit = limit
	return f.results, f.err
}

func rankedDeal(id, name string, current, original float64) domain.RankedDeal {
	return domain.RankedDeal{
		Score: 42,
		Product: domain.ProductRecord{
			PlatformID: id,
			Name:       name,
			Pricing: domain.Pricing{
				CurrentPrice:  &domain.Money{Amount: current},
				OriginalPrice: &domain.Money{Amount: original},
			},
		},
	}
}

func serve(t *testing.T, h *DealsHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetTopDeals(c))
	return rec
}

func TestDealsHandler_GetTopDeals(t *testing.T) {
	svc := &fakeDealsService{results: map[string][]domain.RankedDeal{
		"amazon": {
			rankedDeal("a1", "Phone Case", 100, 500),
			rankedDeal("a2", "Phone Charger", 450, 500),
		},
		"flipkart": {rankedDeal("f1", "Phone Stand", 10, 100)},
	}}

	h := NewDealsHandler(svc, 10, 50)
	rec := serve(t, h, "/api/v1/deals?limit=5&platform=Amazon&min_discount=30&q=phone")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.lastLimit)

	body := rec.Body.String()
	assert.Contains(t, body, `"a1"`)
	assert.NotContains(t, body, `"a2"`)
	assert.NotContains(t, body, `"f1"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
}

func TestDealsHandler_DefaultLimit(t *testing.T) {
	svc := &fakeDealsService{results: map[string][]domain.RankedDeal{}}

	rec := serve(t, NewDealsHandler(svc, 7, 50), "/api/v1/deals")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, svc.lastLimit)
}

func TestDealsHandler_InvalidQuery(t *testing.T) {
	svc := &fakeDealsService{}
	h := NewDealsHandler(svc, 10, 50)

	for _, target := range []string{
		"/api/v1/deals?limit=500",
		"/api/v1/deals?min_rating=9",
		"/api/v1/deals?min_discount=-1",
		"/api/v1/deals?limit=abc",
	} {
		rec := serve(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	assert.Zero(t, svc.lastLimit)
}

func TestDealsHandler_ServiceError(t *testing.T) {
	svc := &fakeDealsService{err: errors.New("context error: context canceled")}

	rec := serve(t, NewDealsHandler(svc, 10, 50), "/api/v1/deals")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "context canceled")
}

func TestDealsHandler_ConfiguredMaxLimit(t *testing.T) {
	svc := &fakeDealsService{results: map[string][]domain.RankedDeal{}}
	h := NewDealsHandler(svc, 10, 80)

	rec := serve(t, h, "/api/v1/deals?limit=80")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 80, svc.lastLimit)

	rec = serve(t, h, "/api/v1/deals?limit=81")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "between 1 and 80")
	assert.Equal(t, 80, svc.lastLimit)
}

func TestNewDealsHandler_DefaultWithinMax(t *testing.T) {
	svc := &fakeDealsService{results: map[string][]domain.RankedDeal{}}

	rec := serve(t, NewDealsHandler(svc, 30, 5), "/api/v1/deals")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.lastLimit)
}
