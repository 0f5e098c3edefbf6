package domain

import (
	"context"
	"time"
)

// PartnerRepository reads from the hosted data service. This system never
// writes: every entity here is owned externally.
type PartnerRepository interface {
	// GetPartner fetches one row from the unified view by id with an
	// explicit field projection. Returns ErrNotFound when no row matches.
	GetPartner(ctx context.Context, id string) (PartnerRecord, error)
	ListPartners(ctx context.Context, limit int) ([]PartnerRecord, error)
	ListPartnerIDs(ctx context.Context, limit int) ([]string, error)

	// GetProfile fetches the profile row keyed by principal id.
	// Returns ErrNotFound when the principal has no profile yet.
	GetProfile(ctx context.Context, userID string) (Profile, error)
}

// SessionClient resolves a credential token into a Principal.
// Returns ErrNoSession when the token does not resolve.
type SessionClient interface {
	ResolveUser(ctx context.Context, token string) (Principal, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
