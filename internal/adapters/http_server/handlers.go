package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"roamio/internal/app"
	"roamio/internal/domain"
)

type Handlers struct {
	Q *app.PartnerQueries
	S *app.SessionService

	// CookieName is the credential cookie carrying the session token.
	CookieName string
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/partners", h.listPartners)
	s.mux.Get("/partners/{id}", h.getPartner)
	s.mux.Get("/session", h.getSession)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) getPartner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pv, err := h.Q.LookupPartner(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrPartnerIDRequired):
		writeError(w, http.StatusBadRequest, "Partner ID is required")
		return
	case errors.Is(err, domain.ErrNotFound):
		log.Warn().Str("id", id).Err(err).Msg("partner not found")
		writeError(w, http.StatusNotFound, "Partner not found")
		return
	case err != nil:
		// full detail stays in the logs; the caller gets a generic message
		log.Error().Str("id", id).Err(err).Msg("partner lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch partner")
		return
	}

	etag, body := calcETagAndBody(pv)
	if body == nil {
		log.Error().Str("id", id).Msg("partner response marshal failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getPartner body")
	}
}

func (h *Handlers) listPartners(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = l
	}

	page, err := h.Q.ListPartners(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("partner listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch partners")
		return
	}

	etag, body := calcETagAndBody(page)
	if body == nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listPartners body")
	}
}

// getSession always answers 200: failures collapse to the anonymous context
// so the header can render regardless.
func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	var token string
	if c, err := r.Cookie(h.CookieName); err == nil {
		token = c.Value
	}

	hc := h.S.ResolveHeaderContext(r.Context(), token)

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(hc); err != nil {
		log.Error().Err(err).Msg("failed to write session body")
	}
}
