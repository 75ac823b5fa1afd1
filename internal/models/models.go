package models

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// ProductCard is one recommended product as returned by the recommendation
// service. The json tags are the wire contract; they match the service's
// card shape and must not change.
type ProductCard struct {
	Title       string  `json:"title"`
	Price       Price   `json:"price"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Link        string  `json:"link"`
}

// Recommendation is the response envelope of POST /recommendation.
// The service also returns a "criteria" object; we have no use for it.
type Recommendation struct {
	Cards   []ProductCard `json:"cards"`
	Summary string        `json:"recommendation"`
}

// Price tolerates the service's loose price encoding: a plain JSON number,
// a numeric string, the literal "N/A", or null all decode. Anything
// non-numeric decodes to zero rather than failing the whole response.
type Price float64

var rePrice = regexp.MustCompile(`[^\d\.]+`)

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = 0
	if string(data) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Price(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	cleaned := rePrice.ReplaceAllString(s, "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	*p = Price(f)
	return nil
}
