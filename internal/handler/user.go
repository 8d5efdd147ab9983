package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
	"github.com/aditi25bce10868-blip/NexusPrime/internal/service"
)

// UserHandler handles registration, login, and profile HTTP requests.
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// HandleRegister processes a registration request.
// POST /users/register
// Request:  {"name":"...","email":"...","password":"..."}
// Response: 201 {"status":"success","data":{"user":{...},"token":"..."}}
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		slog.Error("issue token after register", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"user":  toUserDTO(user),
		"token": token,
	}, nil)
}

// HandleLogin processes a login request.
// POST /users/login
// Request:  {"email":"...","password":"..."}
// Response: 200 {"status":"success","data":{"user":{...},"token":"..."}}
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"user":  toUserDTO(user),
		"token": token,
	}, nil)
}

// HandleGetProfile returns the authenticated user's profile.
// GET /users/profile
func (h *UserHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.GetUserByID(r.Context(), SubjectFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": toUserDTO(user)}, nil)
}

// HandleUpdateProfile applies a partial profile update for the authenticated
// user. Absent fields stay untouched.
// PUT /users/profile
// Request: {"name":"...","email":"..."} (both optional)
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), SubjectFromContext(r.Context()),
		domain.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": toUserDTO(user)}, nil)
}

// HandleList returns all registered users in their public shape.
// GET /users
// Response: 200 {"status":"success","count":N,"data":{"users":[...]}}
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dtos := toUserDTOs(users)
	writeSuccess(w, http.StatusOK, map[string]any{"users": dtos},
		map[string]any{"count": len(dtos)})
}
