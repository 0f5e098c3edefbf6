package domain

import "time"

// Principal is the authenticated identity resolved from the request's
// credential cookie. It lives only for the request/render cycle and is never
// persisted here. Structurally-required fields (Phone, Audience, Role) carry
// stable defaults even when the upstream identity omits them, so consumers
// see a uniform shape regardless of which provider resolved the session.
type Principal struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	EmailConfirmed bool           `json:"email_confirmed"`
	Audience       string         `json:"aud"`
	Role           string         `json:"role"`
	CreatedAt      time.Time      `json:"created_at"`
	LastSignInAt   *time.Time     `json:"last_sign_in_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Profile holds user-chosen presentation data keyed by principal id.
// Read-only from this system; at most one per principal.
type Profile struct {
	UserID      string  `json:"user_id"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// HeaderContext is the combined view handed to the rendering layer.
// Both fields are nil for anonymous requests; Profile alone may be nil when
// the principal has no profile row yet.
type HeaderContext struct {
	Principal *Principal `json:"principal"`
	Profile   *Profile   `json:"profile"`
}
