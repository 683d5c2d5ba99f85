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

type CreateQuestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Skill       string `json:"skill"`
	XPReward    int    `json:"xpReward"`
}

func (h *Handler) GetQuests(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	quests, err := h.store.ListOpenQuests(r.Context(), id)
	if err != nil {
		storeError(w, err, "could not load quests")
		return
	}
	utils.Success(w, quests)
}

func (h *Handler) CreateQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req CreateQuestRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	difficulty := model.Difficulty(strings.ToLower(strings.TrimSpace(req.Difficulty)))
	if difficulty == "" {
		difficulty = model.DifficultyEasy
	}
	if !difficulty.IsValid() {
		utils.Error(w, http.StatusBadRequest, "difficulty must be easy, medium or hard")
		return
	}
	if req.Skill != "" && !model.IsSkillName(req.Skill) {
		utils.Error(w, http.StatusBadRequest, "unknown skill "+req.Skill)
		return
	}
	if req.XPReward < 0 {
		utils.Error(w, http.StatusBadRequest, "xpReward cannot be negative")
		return
	}
	if req.XPReward > xp.MaxAward {
		utils.Error(w, http.StatusBadRequest, fmt.Sprintf("xpReward cannot exceed %d", xp.MaxAward))
		return
	}
	if req.XPReward == 0 {
		req.XPReward = difficulty.DefaultReward()
	}

	quest := model.Quest{
		ID:          uuid.NewString(),
		UserID:      id,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Difficulty:  difficulty,
		Skill:       req.Skill,
		XPReward:    req.XPReward,
		CreatedAt:   h.now(),
	}
	if err := h.store.CreateQuest(r.Context(), quest); err != nil {
		storeError(w, err, "could not create quest")
		return
	}
	utils.Created(w, quest)
}

func (h *Handler) DeleteQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteQuest(r.Context(), mux.Vars(r)["id"], id); err != nil {
		storeError(w, err, "quest not found")
		return
	}
	utils.Message(w, "quest deleted")
}

func (h *Handler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	writeResult(w, h.progress.CompleteQuest(r.Context(), mux.Vars(r)["id"], id))
}
