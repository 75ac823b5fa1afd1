package cards

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"mspro-labs/vitrin/internal/models"
)

// starCount is fixed by the rating scale: ratings live in [0,5].
const starCount = 5

// Star is the fill state of one star in the rating row.
type Star struct {
	FillPercent int
}

// View is the presentational projection of one ProductCard: price already
// formatted, stars precomputed, image fallback applied. Templates stay dumb.
type View struct {
	Title       string
	Price       string
	Stars       []Star
	Rating      float64
	RatingCount int
	Description string
	Image       string
	Link        string
}

// Projector turns wire records into renderable card views.
type Projector struct {
	placeholder string
	printer     *message.Printer
}

// NewProjector builds a projector for the given BCP 47 locale. An invalid
// tag falls back to Turkish, the service's market.
func NewProjector(locale, placeholderImage string) *Projector {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Turkish
	}
	return &Projector{
		placeholder: placeholderImage,
		printer:     message.NewPrinter(tag),
	}
}

// Project maps records into card views. A record without a title has
// nothing to display and is skipped; a missing image becomes the
// placeholder asset, never an empty source.
func (p *Projector) Project(records []models.ProductCard) []View {
	views := make([]View, 0, len(records))
	for _, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			continue
		}

		image := rec.Image
		if image == "" {
			image = p.placeholder
		}

		ratingCount := rec.RatingCount
		if ratingCount < 0 {
			ratingCount = 0
		}

		views = append(views, View{
			Title:       title,
			Price:       p.FormatPrice(float64(rec.Price)),
			Stars:       StarFills(rec.Rating),
			Rating:      rec.Rating,
			RatingCount: ratingCount,
			Description: rec.Description,
			Image:       image,
			Link:        rec.Link,
		})
	}
	return views
}

// FormatPrice renders the amount with locale-aware grouping and two
// decimals, suffixed with the lira sign.
func (p *Projector) FormatPrice(amount float64) string {
	return p.printer.Sprintf("%v ₺", number.Decimal(amount, number.Scale(2)))
}

// StarFills computes the fill of each of the five stars: star i is filled
// by rating-(i-1), clamped to [0,1]. A 3.5 rating gives three full stars,
// one half star and one empty star.
func StarFills(rating float64) []Star {
	if rating < 0 {
		rating = 0
	}
	if rating > starCount {
		rating = starCount
	}

	stars := make([]Star, starCount)
	for i := 0; i < starCount; i++ {
		fill := (rating - float64(i)) * 100
		if fill < 0 {
			fill = 0
		}
		if fill > 100 {
			fill = 100
		}
		stars[i] = Star{FillPercent: int(fill + 0.5)}
	}
	return stars
}
