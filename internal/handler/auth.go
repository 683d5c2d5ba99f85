package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/middleware"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

const minPasswordLength = 6

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token   string         `json:"token"`
	Session model.Session  `json:"session"`
	Profile *model.Profile `json:"profile"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if !strings.Contains(req.Email, "@") {
		utils.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < minPasswordLength {
		utils.Error(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = strings.SplitN(req.Email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    h.now(),
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.Error(w, http.StatusConflict, "email already registered")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}

	res := h.progress.SetupAccount(r.Context(), user.ID, req.DisplayName)
	if !res.Success {
		utils.Error(w, http.StatusInternalServerError, res.Error)
		return
	}

	session, err := h.openSession(r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	logger.Success("New account %s", user.ID)
	utils.Created(w, AuthResponse{Token: session.Token, Session: session, Profile: res.Profile})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not load user", err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	profile, err := h.store.GetProfile(r.Context(), user.ID)
	if err != nil {
		storeError(w, err, "could not load profile")
		return
	}
	withNextLevel(&profile)

	session, err := h.openSession(r, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, AuthResponse{Token: session.Token, Session: session, Profile: &profile})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}
	if err := h.store.DeleteSession(r.Context(), token); err != nil {
		storeError(w, err, "session not found or already logged out")
		return
	}
	utils.Message(w, "logged out")
}

// openSession issues a UUID token valid for SessionTTL.
func (h *Handler) openSession(r *http.Request, userID string) (model.Session, error) {
	now := h.now()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := h.store.CreateSession(r.Context(), session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}
