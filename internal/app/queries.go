package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roamio/internal/domain"
)

const defaultListLimit = 50

// PartnerQueries implements the partner lookup read path: validate, check
// cache, fetch the projected row, normalize, cache the normalized view.
type PartnerQueries struct {
	repo     domain.PartnerRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPartnerQueries(r domain.PartnerRepository, c domain.Cache, ttl time.Duration) *PartnerQueries {
	return &PartnerQueries{repo: r, cache: c, cacheTTL: ttl}
}

// LookupPartner returns the normalized PartnerView for id.
// An empty/whitespace id fails with ErrPartnerIDRequired before any backend
// read. Cache failures are best-effort and never fail the lookup.
func (s *PartnerQueries) LookupPartner(ctx context.Context, id string) (domain.PartnerView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.PartnerView{}, domain.ErrPartnerIDRequired
	}

	key := "partner:" + id
	var pv domain.PartnerView
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &pv); ok {
			return pv, nil
		}
	}

	rec, err := s.repo.GetPartner(ctx, id)
	if err != nil {
		return domain.PartnerView{}, fmt.Errorf("get partner %s: %w", id, err)
	}

	pv = mapPartnerView(rec)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, pv, s.cacheTTL)
	}
	return pv, nil
}

// ListPartners returns up to limit partner summaries.
func (s *PartnerQueries) ListPartners(ctx context.Context, limit int) (domain.PartnersPage, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	recs, err := s.repo.ListPartners(ctx, limit)
	if err != nil {
		return domain.PartnersPage{}, fmt.Errorf("list partners: %w", err)
	}
	items := make([]domain.PartnerSummary, 0, len(recs))
	for _, rec := range recs {
		items = append(items, mapPartnerSummary(rec))
	}
	return domain.PartnersPage{Items: items}, nil
}
