package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/SaiAmirthesh/Looped-sub000/internal/middleware"
	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/services"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

// SessionTTL is how long a login token stays valid.
const SessionTTL = 24 * time.Hour

// Handler holds the dependencies of the HTTP routes.
type Handler struct {
	store    store.Store
	progress *progress.Service
	avatars  services.AvatarUploader
	now      func() time.Time
}

// New builds a Handler. avatars may be nil when Cloudinary is not configured.
func New(st store.Store, svc *progress.Service, avatars services.AvatarUploader) *Handler {
	return &Handler{
		store:    st,
		progress: svc,
		avatars:  avatars,
		now:      time.Now,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}

// userID reads the authenticated user, writing a 401 when there is none.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// storeError maps store sentinels to HTTP statuses. Only unexpected errors are logged.
func storeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.Error(w, status, msg, err)
		return
	}
	utils.Error(w, status, msg)
}

// writeResult renders a progress Result. The service already logged failures.
func writeResult(w http.ResponseWriter, res progress.Result) {
	if !res.Success {
		utils.Error(w, statusFor(res.Err()), res.Error)
		return
	}
	utils.Success(w, res)
}

// decodeOptional accepts an empty body.
func decodeOptional(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := utils.DecodeJSON(r, dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
