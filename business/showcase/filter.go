package showcase

import (
	"myBestDeals/domain"
	"slices"
	"strings"
)

// Filter holds the display-time thresholds. They are applied after ranking
// and never influence which deals the ranking retained.
type Filter struct {
	// empty means every platform
	Platforms   []string
	MinDiscount float64
	MinRating   float64
	Keyword     string
}

func (f Filter) includes(platform string) bool {
	return len(f.Platforms) == 0 || slices.Contains(f.Platforms, platform)
}

// Match reports whether one deal passes the thresholds.
func (f Filter) Match(d domain.RankedDeal) bool {
	p := d.Product

	if p.Discount() < f.MinDiscount {
		return false
	}
	if p.Rating() < f.MinRating {
		return false
	}

	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))
	if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
		return false
	}

	return true
}

// Apply returns the selected platforms with their matching deals, keeping
// rank order. A selected platform with no match maps to an empty list.
func (f Filter) Apply(results map[string][]domain.RankedDeal) map[string][]domain.RankedDeal {
	out := make(map[string][]domain.RankedDeal, len(results))

	for platform, deals := range results {
		if !f.includes(platform) {
			continue
		}

		kept := make([]domain.RankedDeal, 0, len(deals))
		for _, d := range deals {
			if f.Match(d) {
				kept = append(kept, d)
			}
		}
		out[platform] = kept
	}

	return out
}
