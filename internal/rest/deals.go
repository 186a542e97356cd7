package rest

import (
	"context"
	"fmt"
	"myBestDeals/business/showcase"
	"myBestDeals/domain"
	"myBestDeals/pkg/logger"
	"net/http"
	"strings"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DealsHandler struct {
		validate     *validator.Validate
		dealsService DealsService
		defaultLimit int
		maxLimit     int
		timeout      time.Duration
	}

	DealsService interface {
		GetTopDeals(ctx context.Context, limit int) (map[string][]domain.RankedDeal, error)
	}

	// GET /api/v1/deals?limit=10&platform=amazon&min_discount=30&min_rating=3.5&q=phone
	TopDealsQuery struct {
		Limit       int      `query:"limit" validate:"gte=0"`
		Platforms   []string `query:"platform" validate:"dive,required"`
		MinDiscount float64  `query:"min_discount" validate:"gte=0,lte=100"`
		MinRating   float64  `query:"min_rating" validate:"gte=0,lte=5"`
		Keyword     string   `query:"q" validate:"max=100"`
	}
)

func NewDealsHandler(svc DealsService, defaultLimit, maxLimit int) *DealsHandler {
	if maxLimit <= 0 {
		maxLimit = 50
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(10, maxLimit)
	}
	return &DealsHandler{
		validate:     validator.New(),
		dealsService: svc,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		timeout:      15 * time.Second,
	}
}

func (h *DealsHandler) GetTopDeals(c echo.Context) error {
	var q TopDealsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	if q.Limit > h.maxLimit {
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(
			fmt.Sprintf("limit must be between 1 and %d", h.maxLimit)))
	}
	if q.Limit <= 0 {
		q.Limit = h.defaultLimit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.dealsService.GetTopDeals(ctx, q.Limit)
	if err != nil {
		logger.Error("Failed to get top deals", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	platforms := make([]string, 0, len(q.Platforms))
	for _, p := range q.Platforms {
		platforms = append(platforms, strings.ToLower(strings.TrimSpace(p)))
	}

	filter := showcase.Filter{
		Platforms:   platforms,
		MinDiscount: q.MinDiscount,
		MinRating:   q.MinRating,
		Keyword:     q.Keyword,
	}

	views := make(map[string][]showcase.DealView)
	for platform, deals := range filter.Apply(results) {
		views[platform] = showcase.NewDealViews(deals)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(views))
}
