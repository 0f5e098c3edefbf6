package app

import (
	"testing"

	"roamio/internal/domain"
)

func strp(s string) *string { return &s }

func TestParseRating(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want *float64
	}{
		{"nil", nil, nil},
		{"empty", strp(""), nil},
		{"plain", strp("4.5"), fp(4.5)},
		{"comma separator", strp("4,2"), fp(4.2)},
		{"padded", strp(" 3.0 "), fp(3.0)},
		{"integer text", strp("5"), fp(5)},
		{"garbage", strp("great!"), nil},
		{"nan text", strp("NaN"), nil},
		{"inf text", strp("+Inf"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseRating(tc.in)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("want absent, got %v", *got)
			case tc.want != nil && (got == nil || *got != *tc.want):
				t.Fatalf("want %v, got %v", *tc.want, got)
			}
		})
	}
}

func TestDecodeStringList(t *testing.T) {
	if got := decodeStringList(nil); got == nil || len(got) != 0 {
		t.Fatalf("null input must yield empty non-nil list, got %#v", got)
	}
	if got := decodeStringList([]byte(`not json`)); got == nil || len(got) != 0 {
		t.Fatalf("malformed input must yield empty non-nil list, got %#v", got)
	}
	got := decodeStringList([]byte(`["wifi","",{"url":"https://img/1.jpg"},{"other":1}]`))
	if len(got) != 2 || got[0] != "wifi" || got[1] != "https://img/1.jpg" {
		t.Fatalf("unexpected list: %#v", got)
	}
}

func TestDecodeContact(t *testing.T) {
	if c := decodeContact(nil); c != nil {
		t.Fatalf("absent block must collapse to nil, got %+v", c)
	}
	if c := decodeContact([]byte(`{"phone":"","email":" ","website":""}`)); c != nil {
		t.Fatalf("fully-empty block must collapse to nil, got %+v", c)
	}
	c := decodeContact([]byte(`{"phone":"+1 555","email":"a@b.c","website":"https://x","fax":"ignored"}`))
	if c == nil || c.Phone != "+1 555" || c.Email != "a@b.c" || c.Website != "https://x" {
		t.Fatalf("unexpected contact: %+v", c)
	}
}

func TestDecodeCoords(t *testing.T) {
	if c := decodeCoords([]byte(`{"lat":41.0}`)); c != nil {
		t.Fatalf("half a pair is no pair: %+v", c)
	}
	c := decodeCoords([]byte(`{"latitude":"41.02","lng":29.01}`))
	if c == nil || c.Lat != 41.02 || c.Lon != 29.01 {
		t.Fatalf("unexpected coords: %+v", c)
	}
}

func TestMapPartnerView_Normalization(t *testing.T) {
	rec := domain.PartnerRecord{
		ID:        "p1",
		Name:      "Hotel X",
		RatingRaw: strp("4.2"),
		// amenities, images, contact_info all NULL in the view
	}
	pv := mapPartnerView(rec)

	if pv.Rating == nil || *pv.Rating != 4.2 {
		t.Fatalf("rating: want 4.2, got %v", pv.Rating)
	}
	if pv.Amenities == nil || len(pv.Amenities) != 0 {
		t.Fatalf("amenities must be empty list, got %#v", pv.Amenities)
	}
	if pv.Images == nil || len(pv.Images) != 0 {
		t.Fatalf("images must be empty list, got %#v", pv.Images)
	}
	if pv.ContactInfo != nil {
		t.Fatalf("contact_info must be absent, got %+v", pv.ContactInfo)
	}
}

func fp(f float64) *float64 { return &f }
