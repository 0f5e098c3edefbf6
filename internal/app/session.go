package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"roamio/internal/domain"
)

// resolution is the typed outcome of principal resolution. Failures are kept
// distinct from plain absence internally so they can be logged before the
// outward collapse to "anonymous".
type resolution int

const (
	resolutionFound resolution = iota
	resolutionAbsent
	resolutionFailed
)

// SessionService composes the header context: resolve the principal from the
// credential token, then fetch the matching profile. The profile read never
// starts before resolution completes.
type SessionService struct {
	auth    domain.SessionClient
	repo    domain.PartnerRepository
	timeout time.Duration
}

func NewSessionService(auth domain.SessionClient, repo domain.PartnerRepository, timeout time.Duration) *SessionService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SessionService{auth: auth, repo: repo, timeout: timeout}
}

// ResolveHeaderContext never fails: any resolution error collapses to the
// anonymous context so the surrounding render always proceeds.
func (s *SessionService) ResolveHeaderContext(ctx context.Context, token string) domain.HeaderContext {
	p, state := s.resolvePrincipal(ctx, token)
	if state != resolutionFound {
		if state == resolutionAbsent {
			log.Debug().Msg("session: no principal")
		}
		return domain.HeaderContext{}
	}

	hc := domain.HeaderContext{Principal: p}

	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	prof, err := s.repo.GetProfile(pctx, p.ID)
	switch {
	case err == nil:
		hc.Profile = &prof
		log.Debug().
			Str("email", p.Email).
			Str("display_name", derefStr(prof.DisplayName)).
			Msg("session: principal and profile resolved")
	case errors.Is(err, domain.ErrNotFound):
		// normal state: the principal simply has no profile row yet
		log.Debug().Str("email", p.Email).Msg("session: principal without profile")
	default:
		log.Warn().Err(err).Str("email", p.Email).Msg("session: profile fetch failed")
	}

	return hc
}

func (s *SessionService) resolvePrincipal(ctx context.Context, token string) (*domain.Principal, resolution) {
	if token == "" {
		return nil, resolutionAbsent
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, resolutionAbsent
		}
		// swallowed at this boundary, but not before it is logged
		log.Warn().Err(err).Msg("session: principal resolution failed")
		return nil, resolutionFailed
	}
	return &p, resolutionFound
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
