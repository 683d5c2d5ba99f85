package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

const maxLeaderboardLimit = 100

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	data, res := h.progress.GetDashboardData(r.Context(), id)
	if !res.Success {
		writeResult(w, res)
		return
	}
	utils.Success(w, data)
}

// GetCalendar returns a month rollup: /calendar/{year}/{month}
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 {
		utils.Error(w, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		utils.Error(w, http.StatusBadRequest, "invalid month")
		return
	}

	data, res := h.progress.GetMonthCompletions(r.Context(), id, year, month)
	if !res.Success {
		writeResult(w, res)
		return
	}
	utils.Success(w, data)
}

// GetLeaderboard: ?limit= (default 50, max 100)
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 0)
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	entries, res := h.progress.GetLeaderboard(r.Context(), limit)
	if !res.Success {
		writeResult(w, res)
		return
	}
	utils.Success(w, entries)
}

func (h *Handler) GetSkills(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	skills, err := h.store.ListSkills(r.Context(), id)
	if err != nil {
		storeError(w, err, "could not load skills")
		return
	}
	for i := range skills {
		skills[i].NextLevelXP = xp.LevelThreshold(skills[i].Level)
	}
	utils.Success(w, skills)
}
