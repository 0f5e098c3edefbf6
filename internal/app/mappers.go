package app

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"roamio/internal/domain"
)

/********** tiny helpers **********/

// lookupStr returns the string under key, or "".
func lookupStr(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// floatAt: number under the first matching key (float64/int/numeric string).
func floatAt(m map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			if f := parseFloatText(v); f != nil {
				return f
			}
		}
	}
	return nil
}

// parseFloatText parses decimal text, tolerating a comma separator ("4,2").
// Returns nil on empty, malformed or non-finite input.
func parseFloatText(s string) *float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

/********** normalization rules **********/

// parseRating coerces the stored rating, which the view may encode as text.
// A failed parse is a data-quality condition: the result is absent, never NaN.
func parseRating(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	return parseFloatText(*raw)
}

// decodeStringList decodes a JSON array into a never-nil ordered list.
// Accepts plain strings or objects carrying url/src/name.
func decodeStringList(b []byte) []string {
	out := []string{}
	if len(b) == 0 {
		return out
	}
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return out
	}
	for _, it := range raw {
		switch t := it.(type) {
		case string:
			if t != "" {
				out = append(out, t)
			}
		case map[string]any:
			for _, k := range []string{"url", "src", "name"} {
				if s := lookupStr(t, k); s != "" {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out
}

// decodeCoords decodes a geo pair, accepting common key spellings.
func decodeCoords(b []byte) *domain.Coords {
	if len(b) == 0 {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	lat := floatAt(raw, "lat", "latitude")
	lon := floatAt(raw, "lon", "lng", "longitude")
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Coords{Lat: *lat, Lon: *lon}
}

// decodeContact projects only the three named subfields, discarding any other
// nested keys. An absent or fully-empty block collapses to nil so the output
// never carries an object of empty subfields.
func decodeContact(b []byte) *domain.Contact {
	if len(b) == 0 {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	c := domain.Contact{
		Phone:   strings.TrimSpace(lookupStr(raw, "phone")),
		Email:   strings.TrimSpace(lookupStr(raw, "email")),
		Website: strings.TrimSpace(lookupStr(raw, "website")),
	}
	if c.Phone == "" && c.Email == "" && c.Website == "" {
		return nil
	}
	return &c
}

/********** partner mappers **********/

func mapPartnerView(rec domain.PartnerRecord) domain.PartnerView {
	return domain.PartnerView{
		ID:          rec.ID,
		Name:        rec.Name,
		Type:        rec.Type,
		Description: rec.Description,
		Location:    rec.Location,
		PriceRange:  rec.PriceRange,
		Rating:      parseRating(rec.RatingRaw),
		Amenities:   decodeStringList(rec.Amenities),
		Coordinates: decodeCoords(rec.Coordinates),
		Images:      decodeStringList(rec.Images),
		ContactInfo: decodeContact(rec.ContactInfo),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func mapPartnerSummary(rec domain.PartnerRecord) domain.PartnerSummary {
	return domain.PartnerSummary{
		ID:       rec.ID,
		Name:     rec.Name,
		Type:     rec.Type,
		Location: rec.Location,
		Rating:   parseRating(rec.RatingRaw),
	}
}
