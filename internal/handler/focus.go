package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

type CreateFocusSessionRequest struct {
	DurationMinutes int    `json:"durationMinutes"`
	SessionType     string `json:"sessionType"`
}

type CompleteFocusSessionRequest struct {
	DurationMinutes int `json:"durationMinutes"`
}

func (h *Handler) CreateFocusSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req CreateFocusSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.DurationMinutes < 0 || req.DurationMinutes > xp.MaxFocusMinutes {
		utils.Error(w, http.StatusBadRequest, fmt.Sprintf("durationMinutes must be between 0 and %d", xp.MaxFocusMinutes))
		return
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = xp.FocusBaseMinutes
	}
	sessionType := model.SessionType(req.SessionType)
	if sessionType == "" {
		sessionType = model.SessionFocus
	}
	if !sessionType.IsValid() {
		utils.Error(w, http.StatusBadRequest, "sessionType must be focus, short-break or long-break")
		return
	}

	session := model.FocusSession{
		ID:              uuid.NewString(),
		UserID:          id,
		DurationMinutes: req.DurationMinutes,
		SessionType:     sessionType,
		CreatedAt:       h.now(),
	}
	if err := h.store.CreateFocusSession(r.Context(), session); err != nil {
		storeError(w, err, "could not create focus session")
		return
	}
	utils.Created(w, session)
}

// CompleteFocusSession falls back to the planned duration when the body has none.
func (h *Handler) CompleteFocusSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req CompleteFocusSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.DurationMinutes > xp.MaxFocusMinutes {
		utils.Error(w, http.StatusBadRequest, fmt.Sprintf("durationMinutes cannot exceed %d", xp.MaxFocusMinutes))
		return
	}

	sessionID := mux.Vars(r)["id"]
	minutes := req.DurationMinutes
	if minutes <= 0 {
		session, err := h.store.GetFocusSession(r.Context(), sessionID, id)
		if err != nil {
			storeError(w, err, "focus session not found")
			return
		}
		minutes = session.DurationMinutes
	}
	writeResult(w, h.progress.CompleteFocusSession(r.Context(), sessionID, id, minutes))
}
