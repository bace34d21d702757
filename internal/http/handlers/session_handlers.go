package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/shophub/internal/auth"
	"github.com/rogerio-castellano/shophub/internal/session"
)

// CreateSessionHandler godoc
// @Summary Start a shopping session
// @Description Creates an empty cart and favorites list and returns a bearer token for them.
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResult
// @Failure 500 {string} string "Internal error"
// @Router /sessions [post]
func (s *Server) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessions.Create(r.Context())
	if err != nil {
		s.log.WithError(err).Error("could not create session")
		http.Error(w, "could not create session", http.StatusInternalServerError)
		return
	}

	token, err := s.tokens.GenerateToken(id)
	if err != nil {
		s.log.WithError(err).Error("could not sign session token")
		http.Error(w, "could not create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, SessionResult{SessionID: id, Token: token})
}

// DeleteSessionHandler godoc
// @Summary End the current session
// @Tags sessions
// @Security BearerAuth
// @Success 204
// @Failure 401 {string} string "Unauthorized"
// @Router /sessions/current [delete]
func (s *Server) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := auth.SessionIDFromContext(r.Context())
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.log.WithError(err).WithField("session_id", id).Warn("could not delete persisted session")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	s.log.WithError(err).Error("session lookup failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}
