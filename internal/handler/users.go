package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/job-portal/internal/domain"
	"github.com/msomdec/job-portal/internal/service"
)

// UsersHandler exposes user registration over HTTP.
type UsersHandler struct {
	users *service.UsersManager
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(users *service.UsersManager) *UsersHandler {
	return &UsersHandler{users: users}
}

// HandleRegister processes a JSON registration request.
// POST /api/users/register
// Request:  {"email":"...","fullname":"...","role":"...","password":"..."}
// Response: 201 {"message":"User Registered Successfully","user":{...}}
// or 409 {"message":"Email already exist"}
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user := req.toUser()
	msg, err := h.users.AddUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("register user", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	switch msg {
	case service.MsgUserRegistered:
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": msg,
			"user":    toUserDTO(user),
		})
	case service.MsgEmailExists:
		writeJSON(w, http.StatusConflict, map[string]any{"message": msg})
	default:
		slog.Error("register user: unexpected outcome", "message", msg)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
