package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

type CreateReminderRequest struct {
	Title        string `json:"title"`
	Note         string `json:"note"`
	ReminderDate string `json:"reminderDate"`
	ReminderTime string `json:"reminderTime"`
}

func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req CreateReminderRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	if _, err := time.Parse(progress.DayLayout, req.ReminderDate); err != nil {
		utils.Error(w, http.StatusBadRequest, "reminderDate must be YYYY-MM-DD")
		return
	}
	if req.ReminderTime != "" {
		if _, err := time.Parse("15:04", req.ReminderTime); err != nil {
			utils.Error(w, http.StatusBadRequest, "reminderTime must be HH:MM")
			return
		}
	}

	reminder := model.Reminder{
		ID:           uuid.NewString(),
		UserID:       id,
		Title:        req.Title,
		Note:         strings.TrimSpace(req.Note),
		ReminderDate: req.ReminderDate,
		ReminderTime: req.ReminderTime,
		CreatedAt:    h.now(),
	}
	if err := h.store.CreateReminder(r.Context(), reminder); err != nil {
		storeError(w, err, "could not create reminder")
		return
	}
	utils.Created(w, reminder)
}

func (h *Handler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteReminder(r.Context(), mux.Vars(r)["id"], id); err != nil {
		storeError(w, err, "reminder not found")
		return
	}
	utils.Message(w, "reminder deleted")
}
