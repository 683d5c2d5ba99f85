package handler

import (
	"net/http"
	"strings"

	model "github.com/SaiAmirthesh/Looped-sub000/internal/models"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

const maxAvatarBytes = 5 << 20

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
}

func withNextLevel(p *model.Profile) {
	p.NextLevelXP = xp.LevelThreshold(p.Level)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	profile, err := h.store.GetProfile(r.Context(), id)
	if err != nil {
		storeError(w, err, "profile not found")
		return
	}
	withNextLevel(&profile)
	utils.Success(w, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	profile, err := h.store.GetProfile(r.Context(), id)
	if err != nil {
		storeError(w, err, "profile not found")
		return
	}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			utils.Error(w, http.StatusBadRequest, "displayName cannot be empty")
			return
		}
		profile.DisplayName = name
	}

	if err := h.store.UpdateProfileDetails(r.Context(), id, profile.DisplayName, profile.AvatarURL); err != nil {
		storeError(w, err, "could not update profile")
		return
	}
	withNextLevel(&profile)
	utils.Success(w, profile)
}

// UploadAvatar expects a multipart form with an "avatar" field.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if h.avatars == nil {
		utils.Error(w, http.StatusServiceUnavailable, "avatar storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		utils.Error(w, http.StatusBadRequest, "avatar must be a multipart upload under 5MB")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file")
		return
	}
	defer file.Close()
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		utils.Error(w, http.StatusBadRequest, "avatar must be an image")
		return
	}

	profile, err := h.store.GetProfile(r.Context(), id)
	if err != nil {
		storeError(w, err, "profile not found")
		return
	}

	url, err := h.avatars.UploadAvatar(r.Context(), file, id)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not upload avatar", err)
		return
	}
	if err := h.store.UpdateProfileDetails(r.Context(), id, profile.DisplayName, url); err != nil {
		storeError(w, err, "could not update profile")
		return
	}

	profile.AvatarURL = url
	withNextLevel(&profile)
	utils.Success(w, profile)
}

func (h *Handler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if h.avatars == nil {
		utils.Error(w, http.StatusServiceUnavailable, "avatar storage is not configured")
		return
	}

	profile, err := h.store.GetProfile(r.Context(), id)
	if err != nil {
		storeError(w, err, "profile not found")
		return
	}
	if profile.AvatarURL != "" {
		if err := h.avatars.DeleteAvatar(r.Context(), id); err != nil {
			utils.Error(w, http.StatusBadGateway, "could not delete avatar", err)
			return
		}
	}
	if err := h.store.UpdateProfileDetails(r.Context(), id, profile.DisplayName, ""); err != nil {
		storeError(w, err, "could not update profile")
		return
	}

	profile.AvatarURL = ""
	withNextLevel(&profile)
	utils.Success(w, profile)
}
