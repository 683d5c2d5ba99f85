package handler

import (
	"net/http"

	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

type route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var routeIndex = map[string][]route{
	"auth": {
		{http.MethodPost, "/auth/signup", "Create an account and its profile"},
		{http.MethodPost, "/auth/login", "Log in and receive a session token"},
		{http.MethodPost, "/auth/logout", "Revoke the current token"},
	},
	"profile": {
		{http.MethodGet, "/profile", "Current profile"},
		{http.MethodPatch, "/profile", "Update display name"},
		{http.MethodPost, "/profile/avatar", "Upload avatar (multipart field: avatar)"},
		{http.MethodDelete, "/profile/avatar", "Remove avatar"},
		{http.MethodGet, "/skills", "Skill trackers"},
	},
	"progress": {
		{http.MethodGet, "/dashboard", "Profile, today's habits, open quests and skills"},
		{http.MethodGet, "/calendar/{year}/{month}", "Completion days, XP and reminders for a month"},
		{http.MethodGet, "/leaderboard", "Ranking by total XP (params: limit)"},
	},
	"habits": {
		{http.MethodGet, "/habits", "Habits with today's status"},
		{http.MethodPost, "/habits", "Create a habit"},
		{http.MethodDelete, "/habits/{id}", "Delete a habit"},
		{http.MethodPost, "/habits/{id}/complete", "Complete for today"},
		{http.MethodDelete, "/habits/{id}/complete", "Undo today's completion"},
	},
	"quests": {
		{http.MethodGet, "/quests", "Open quests"},
		{http.MethodPost, "/quests", "Create a quest"},
		{http.MethodDelete, "/quests/{id}", "Delete a quest"},
		{http.MethodPost, "/quests/{id}/complete", "Complete a quest"},
	},
	"focus": {
		{http.MethodPost, "/focus-sessions", "Start a focus session"},
		{http.MethodPost, "/focus-sessions/{id}/complete", "Complete a focus session"},
	},
	"reminders": {
		{http.MethodPost, "/reminders", "Create a calendar reminder"},
		{http.MethodDelete, "/reminders/{id}", "Delete a reminder"},
	},
	"health": {
		{http.MethodGet, "/health", "Health check"},
	},
}

// RootHandler lists every API route
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"name":    "Looped API",
		"version": "1.0.0",
		"status":  "running",
		"routes":  routeIndex,
	})
}
