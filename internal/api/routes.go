package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SaiAmirthesh/Looped-sub000/internal/handler"
	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	"github.com/SaiAmirthesh/Looped-sub000/internal/middleware"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

// SetupRouter wires every route. sessions resolves tokens for the authenticated routes.
func SetupRouter(h *handler.Handler, sessions middleware.SessionResolver) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	authenticated := r.PathPrefix("/").Subrouter()
	authenticated.Use(middleware.AuthMiddleware(sessions))

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	authenticated.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)

	// Profile
	authenticated.HandleFunc("/profile", h.GetProfile).Methods(http.MethodGet)
	authenticated.HandleFunc("/profile", h.UpdateProfile).Methods(http.MethodPatch)
	authenticated.HandleFunc("/profile/avatar", h.UploadAvatar).Methods(http.MethodPost)
	authenticated.HandleFunc("/profile/avatar", h.DeleteAvatar).Methods(http.MethodDelete)
	authenticated.HandleFunc("/skills", h.GetSkills).Methods(http.MethodGet)

	// Dashboard & calendar
	authenticated.HandleFunc("/dashboard", h.GetDashboard).Methods(http.MethodGet)
	authenticated.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", h.GetCalendar).Methods(http.MethodGet)

	// Habits
	authenticated.HandleFunc("/habits", h.GetHabits).Methods(http.MethodGet)
	authenticated.HandleFunc("/habits", h.CreateHabit).Methods(http.MethodPost)
	authenticated.HandleFunc("/habits/{id}", h.DeleteHabit).Methods(http.MethodDelete)
	authenticated.HandleFunc("/habits/{id}/complete", h.CompleteHabit).Methods(http.MethodPost)
	authenticated.HandleFunc("/habits/{id}/complete", h.UncompleteHabit).Methods(http.MethodDelete)

	// Quests
	authenticated.HandleFunc("/quests", h.GetQuests).Methods(http.MethodGet)
	authenticated.HandleFunc("/quests", h.CreateQuest).Methods(http.MethodPost)
	authenticated.HandleFunc("/quests/{id}", h.DeleteQuest).Methods(http.MethodDelete)
	authenticated.HandleFunc("/quests/{id}/complete", h.CompleteQuest).Methods(http.MethodPost)

	// Focus sessions
	authenticated.HandleFunc("/focus-sessions", h.CreateFocusSession).Methods(http.MethodPost)
	authenticated.HandleFunc("/focus-sessions/{id}/complete", h.CompleteFocusSession).Methods(http.MethodPost)

	// Reminders
	authenticated.HandleFunc("/reminders", h.CreateReminder).Methods(http.MethodPost)
	authenticated.HandleFunc("/reminders/{id}", h.DeleteReminder).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("[404] %s %s (route not found)", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found")
	})

	return middleware.CORSMiddleware(r)
}
