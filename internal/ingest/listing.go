package ingest

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/ananya/intern-match/internal/parsing"
	"github.com/ananya/intern-match/internal/types"
)

// Selectors maps listing-page elements to opportunity fields. Boards vary
// in markup, so each field takes a comma-separated CSS selector list tried
// in order.
type Selectors struct {
	Card        string
	Title       string
	Company     string
	Location    string
	Stipend     string
	Duration    string
	Skills      string
	Description string
}

// DefaultSelectors returns selectors that cover common internship boards.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:        ".internship-card, .job-card, .individual_internship, [data-testid='internship-card']",
		Title:       ".job-title, .profile, h3 a, h3",
		Company:     ".company-name, .company_name, .company",
		Location:    ".location, .location_link, [data-testid='location']",
		Stipend:     ".stipend, .salary, [data-testid='stipend']",
		Duration:    ".duration, [data-testid='duration']",
		Skills:      ".skill, .skills span, .tag",
		Description: ".description, .internship_details",
	}
}

// ParseListing extracts opportunities from a listing page's HTML. Cards
// missing a title or company are skipped; the returned opportunities are
// marked active with skills normalized to taxonomy names.
func ParseListing(html string, category string, sel Selectors) ([]types.Opportunity, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var opportunities []types.Opportunity
	doc.Find(sel.Card).Each(func(_ int, card *goquery.Selection) {
		title := firstText(card, sel.Title)
		company := firstText(card, sel.Company)
		if title == "" || company == "" {
			return
		}

		var skills []string
		card.Find(sel.Skills).Each(func(_ int, s *goquery.Selection) {
			if skill := strings.TrimSpace(s.Text()); skill != "" {
				skills = append(skills, skill)
			}
		})

		opportunities = append(opportunities, types.Opportunity{
			Title:          title,
			Company:        company,
			Category:       category,
			Location:       firstText(card, sel.Location),
			Duration:       firstText(card, sel.Duration),
			Stipend:        parseStipend(firstText(card, sel.Stipend)),
			RequiredSkills: parsing.NormalizeSkills(skills),
			Description:    firstText(card, sel.Description),
			IsActive:       true,
		})
	})

	return opportunities, nil
}

// firstText returns the trimmed text of the first matching element.
func firstText(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	found := s.Find(selector)
	if found.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(found.First().Text())
}

// parseStipend extracts the leading amount from text like "₹ 15,000 /month"
// or "15000-20000". Ranges keep the lower bound; unparseable text yields 0.
func parseStipend(text string) int {
	amount := 0
	seen := false
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			amount = amount*10 + int(r-'0')
			seen = true
		case r == ',' || r == ' ':
			continue
		default:
			if seen {
				return amount
			}
		}
	}
	return amount
}
