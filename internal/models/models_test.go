package models

import (
	"encoding/json"
	"testing"
)

func TestPriceUnmarshal(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{`299.99`, 299.99},
		{`1450`, 1450},
		{`"449.90"`, 449.90},
		{`"N/A"`, 0},
		{`null`, 0},
		{`""`, 0},
		{`true`, 0},
	}

	for _, tc := range testCases {
		var p Price
		if err := json.Unmarshal([]byte(tc.input), &p); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", tc.input, err)
			continue
		}
		if float64(p) != tc.expected {
			t.Errorf("Unmarshal(%s): expected %f, got %f", tc.input, tc.expected, float64(p))
		}
	}
}

func TestProductCardDecode(t *testing.T) {
	const body = `{
		"title": "X",
		"price": 299.99,
		"rating": 4.5,
		"rating_count": 120,
		"description": "kompakt ve hafif",
		"image": null,
		"link": "https://example.com/x"
	}`

	var card ProductCard
	if err := json.Unmarshal([]byte(body), &card); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if card.Title != "X" {
		t.Errorf("Title wrong: got %q", card.Title)
	}
	if float64(card.Price) != 299.99 {
		t.Errorf("Price wrong: got %f", float64(card.Price))
	}
	if card.Rating != 4.5 {
		t.Errorf("Rating wrong: got %f", card.Rating)
	}
	if card.RatingCount != 120 {
		t.Errorf("RatingCount wrong: got %d", card.RatingCount)
	}
	// null image decodes to the empty string; the fallback happens at render time.
	if card.Image != "" {
		t.Errorf("Image should be empty for null, got %q", card.Image)
	}
	if card.Link != "https://example.com/x" {
		t.Errorf("Link wrong: got %q", card.Link)
	}
}

func TestRecommendationDecodeWithoutCards(t *testing.T) {
	var rec Recommendation
	if err := json.Unmarshal([]byte(`{}`), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(rec.Cards) != 0 {
		t.Errorf("Expected no cards, got %d", len(rec.Cards))
	}
	if rec.Summary != "" {
		t.Errorf("Expected empty summary, got %q", rec.Summary)
	}
}
