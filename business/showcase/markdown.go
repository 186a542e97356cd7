package showcase

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RenderMarkdown writes one platform section as markdown cards.
func RenderMarkdown(w io.Writer, platform string, views []DealView) error {
	title := platform
	if r, size := utf8.DecodeRuneInString(title); r != utf8.RuneError {
		title = string(unicode.ToUpper(r)) + title[size:]
	}

	if len(views) == 0 {
		_, err := fmt.Fprintf(w, "No %s deals matched your filter.\n\n", platform)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Top %d %s Deals\n\n", len(views), title)

	for _, v := range views {
		fmt.Fprintf(&b, "### [%s](%s)\n", v.Name, v.URL)
		if v.ImageURL != "" {
			fmt.Fprintf(&b, "![%s](%s)\n", v.Name, v.ImageURL)
		}
		fmt.Fprintf(&b, "- **Price**: %s ~~%s~~\n", v.CurrentPrice, v.OriginalPrice)
		fmt.Fprintf(&b, "- **Discount**: %.1f%% | You save %s%s\n", v.Discount, currencySymbol, v.Savings)
		if v.Rating != nil {
			fmt.Fprintf(&b, "- **Rating**: %s (%.1f/5)\n", v.Stars, *v.Rating)
		}
		if v.URL != "#" {
			fmt.Fprintf(&b, "- [View Deal](%s)\n", v.URL)
		}
		b.WriteString("\n---\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
