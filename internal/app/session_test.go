package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/app"
	"roamio/internal/domain"
)

type fakeSessionClient struct {
	principal domain.Principal
	err       error
	calls     int
}

func (f *fakeSessionClient) ResolveUser(ctx context.Context, token string) (domain.Principal, error) {
	f.calls++
	if f.err != nil {
		return domain.Principal{}, f.err
	}
	return f.principal, nil
}

type profileRepo struct {
	fakeRepo
	profile domain.Profile
	err     error
}

func (r *profileRepo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	if r.err != nil {
		return domain.Profile{}, r.err
	}
	return r.profile, nil
}

func TestResolveHeaderContext_NoToken(t *testing.T) {
	auth := &fakeSessionClient{}
	svc := app.NewSessionService(auth, &profileRepo{}, time.Second)

	hc := svc.ResolveHeaderContext(context.Background(), "")

	assert.Nil(t, hc.Principal)
	assert.Nil(t, hc.Profile)
	assert.Zero(t, auth.calls, "no token must mean no upstream call")
}

func TestResolveHeaderContext_InvalidSession(t *testing.T) {
	auth := &fakeSessionClient{err: domain.ErrNoSession}
	svc := app.NewSessionService(auth, &profileRepo{}, time.Second)

	hc := svc.ResolveHeaderContext(context.Background(), "expired-token")

	assert.Nil(t, hc.Principal)
	assert.Nil(t, hc.Profile)
}

func TestResolveHeaderContext_ResolutionFailureCollapses(t *testing.T) {
	auth := &fakeSessionClient{err: errors.New("auth service unreachable")}
	svc := app.NewSessionService(auth, &profileRepo{}, time.Second)

	// must not panic and must not surface the error
	hc := svc.ResolveHeaderContext(context.Background(), "some-token")

	assert.Nil(t, hc.Principal)
	assert.Nil(t, hc.Profile)
}

func TestResolveHeaderContext_PrincipalWithoutProfile(t *testing.T) {
	auth := &fakeSessionClient{principal: domain.Principal{ID: "u1", Email: "a@b.c"}}
	svc := app.NewSessionService(auth, &profileRepo{err: domain.ErrNotFound}, time.Second)

	hc := svc.ResolveHeaderContext(context.Background(), "token")

	require.NotNil(t, hc.Principal)
	assert.Equal(t, "u1", hc.Principal.ID)
	assert.Nil(t, hc.Profile)
}

func TestResolveHeaderContext_PrincipalAndProfile(t *testing.T) {
	name := "Ana"
	auth := &fakeSessionClient{principal: domain.Principal{ID: "u1", Email: "a@b.c"}}
	repo := &profileRepo{profile: domain.Profile{UserID: "u1", DisplayName: &name}}
	svc := app.NewSessionService(auth, repo, time.Second)

	hc := svc.ResolveHeaderContext(context.Background(), "token")

	require.NotNil(t, hc.Principal)
	require.NotNil(t, hc.Profile)
	assert.Equal(t, "Ana", *hc.Profile.DisplayName)
}

func TestResolveHeaderContext_ProfileFetchFailureIsNotFatal(t *testing.T) {
	auth := &fakeSessionClient{principal: domain.Principal{ID: "u1"}}
	repo := &profileRepo{err: errors.New("db down")}
	svc := app.NewSessionService(auth, repo, time.Second)

	hc := svc.ResolveHeaderContext(context.Background(), "token")

	require.NotNil(t, hc.Principal)
	assert.Nil(t, hc.Profile)
}
