// deals - print the best deals per platform
//
// Usage:
//
//	deals top --limit 10 --platform amazon --min-discount 30 --min-rating 3.5 --search phone
//	deals top --format json
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"myBestDeals/business/deals"
	"myBestDeals/business/showcase"
	"myBestDeals/domain"
	"myBestDeals/internal/repository"
	"myBestDeals/pkg/config"
	"myBestDeals/pkg/logger"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "deals",
		Usage:   "Rank scraped products and show the top deals per platform",
		Version: version,
		Commands: []*cli.Command{
			topCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func topCommand() *cli.Command {
	return &cli.Command{
		Name:  "top",
		Usage: "Show the top deals of every configured platform",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "Number of deals per platform",
			},
			&cli.StringSliceFlag{
				Name:    "platform",
				Aliases: []string{"p"},
				Usage:   "Only show these platforms (repeatable)",
			},
			&cli.Float64Flag{
				Name:  "min-discount",
				Usage: "Minimum discount percentage",
			},
			&cli.Float64Flag{
				Name:  "min-rating",
				Usage: "Minimum average rating",
			},
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"q"},
				Usage:   "Keyword that must appear in the product name",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "markdown",
				Usage:   "Output format (markdown, json)",
			},
		},
		Action: runTop,
	}
}

func runTop(c *cli.Context) error {
	format := c.String("format")
	if format != "markdown" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.App.Environment)

	limit := c.Int("limit")
	if limit <= 0 || limit > cfg.Deals.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", cfg.Deals.MaxLimit)
	}

	source, closeSource, err := repository.OpenProductSource(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeSource(context.Background())
	}()

	ctx, cancel := context.WithTimeout(c.Context, cfg.Store.Timeout)
	defer cancel()

	svc := deals.NewDealService(source, repository.DealsConfig(cfg))
	results, err := svc.GetTopDeals(ctx, limit)
	if err != nil {
		return err
	}

	filter := showcase.Filter{
		Platforms:   c.StringSlice("platform"),
		MinDiscount: c.Float64("min-discount"),
		MinRating:   c.Float64("min-rating"),
		Keyword:     c.String("search"),
	}

	return render(c.App.Writer, format, svc.Platforms(), filter.Apply(results))
}

func render(w io.Writer, format string, order []string, results map[string][]domain.RankedDeal) error {
	views := make(map[string][]showcase.DealView, len(results))
	for platform, ranked := range results {
		views[platform] = showcase.NewDealViews(ranked)
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	for _, platform := range order {
		v, ok := views[platform]
		if !ok {
			continue
		}
		if err := showcase.RenderMarkdown(w, platform, v); err != nil {
			return err
		}
	}

	return nil
}
