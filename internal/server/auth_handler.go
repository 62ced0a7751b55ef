package server

import (
	"encoding/json"
	"net/http"

	"github.com/titanhire/titanhire/internal/types"
)

// handleRegister creates an account and opens the workflow session.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := s.auth.Register(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.session.Start(r.Context())
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleLogin authenticates and opens the workflow session. The persisted
// job collection is loaded at this point, not at server boot.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := s.auth.Login(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.session.Start(r.Context())
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleLogout ends the workflow session. In-memory state is discarded;
// persisted jobs survive for the next login.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context()); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.session.End()
	w.WriteHeader(http.StatusNoContent)
}

// handleMe returns the current profile. Failures degrade to the
// placeholder user rather than erroring.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.auth.CurrentUser(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleUpdateProfile updates the current profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.auth.UpdateProfile(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}
