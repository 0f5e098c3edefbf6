package authsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"roamio/internal/adapters/observability"
	"roamio/internal/domain"
)

const (
	defaultAudience = "authenticated"
	defaultRole     = "authenticated"
)

// Client talks to the credential-session service. It only exercises the
// resolve-current-user operation; no session mutation happens here.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// userPayload is the wire shape of the provider's user object.
type userPayload struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Audience         string         `json:"aud"`
	Role             string         `json:"role"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at"`
	CreatedAt        time.Time      `json:"created_at"`
	LastSignInAt     *time.Time     `json:"last_sign_in_at"`
	UserMetadata     map[string]any `json:"user_metadata"`
}

// ResolveUser exchanges a credential token for the current Principal.
// Returns domain.ErrNoSession for anonymous/expired/invalid tokens; any
// other failure surfaces immediately (no retries on this path).
func (c *Client) ResolveUser(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, domain.ErrNoSession
	}
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Principal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/user", nil)
	if err != nil {
		return domain.Principal{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "roamio/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Principal{}, ctx.Err()
		}
		return domain.Principal{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("authsvc", "/user", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		var u userPayload
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
			return domain.Principal{}, fmt.Errorf("decode user payload: %w", err)
		}
		return mapPrincipal(u), nil

	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return domain.Principal{}, domain.ErrNoSession

	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.Principal{}, fmt.Errorf("auth service status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

// mapPrincipal is the field-by-field shape-compatibility mapping: whatever
// the provider omits, the internal Principal still carries with a stable
// default, so downstream consumers see one uniform shape.
func mapPrincipal(u userPayload) domain.Principal {
	p := domain.Principal{
		ID:             u.ID,
		Email:          u.Email,
		Phone:          u.Phone, // zero value "" is the documented default
		Audience:       u.Audience,
		Role:           u.Role,
		EmailConfirmed: u.EmailConfirmedAt != nil,
		CreatedAt:      u.CreatedAt,
		LastSignInAt:   u.LastSignInAt,
		Metadata:       u.UserMetadata,
	}
	if p.Audience == "" {
		p.Audience = defaultAudience
	}
	if p.Role == "" {
		p.Role = defaultRole
	}
	if p.Metadata == nil {
		p.Metadata = map[string]any{}
	}
	return p
}
