package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

type CreateHabitRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Skill    string `json:"skill"`
}

type CompleteHabitRequest struct {
	XPEarned int `json:"xpEarned"`
}

func (h *Handler) GetHabits(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	habits, err := h.store.ListHabitsWithStatus(r.Context(), id, h.progress.Today())
	if err != nil {
		storeError(w, err, "could not load habits")
		return
	}
	utils.Success(w, habits)
}

func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req CreateHabitRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Skill != "" && !model.IsSkillName(req.Skill) {
		utils.Error(w, http.StatusBadRequest, "unknown skill "+req.Skill)
		return
	}

	habit := model.Habit{
		ID:        uuid.NewString(),
		UserID:    id,
		Name:      req.Name,
		Category:  strings.TrimSpace(req.Category),
		Skill:     req.Skill,
		CreatedAt: h.now(),
	}
	if err := h.store.CreateHabit(r.Context(), habit); err != nil {
		storeError(w, err, "could not create habit")
		return
	}
	utils.Created(w, habit)
}

func (h *Handler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteHabit(r.Context(), mux.Vars(r)["id"], id); err != nil {
		storeError(w, err, "habit not found")
		return
	}
	utils.Message(w, "habit deleted")
}

// CompleteHabit takes an optional {"xpEarned": n} body.
func (h *Handler) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req CompleteHabitRequest
	if err := decodeOptional(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.XPEarned > xp.MaxAward {
		utils.Error(w, http.StatusBadRequest, fmt.Sprintf("xpEarned cannot exceed %d", xp.MaxAward))
		return
	}
	writeResult(w, h.progress.CompleteHabit(r.Context(), mux.Vars(r)["id"], id, req.XPEarned))
}

func (h *Handler) UncompleteHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	writeResult(w, h.progress.UncompleteHabit(r.Context(), mux.Vars(r)["id"], id))
}
