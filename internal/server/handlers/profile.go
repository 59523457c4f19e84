package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/storekeeper/internal/server/storage"
	"github.com/iudanet/storekeeper/internal/validation"
	"github.com/iudanet/storekeeper/pkg/api"
)

// ProfileHandler обрабатывает запросы к профилям магазинов
type ProfileHandler struct {
	store  storage.ProfileStorage
	logger *slog.Logger
}

// NewProfileHandler создает новый handler для профилей
func NewProfileHandler(store storage.ProfileStorage, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		store:  store,
		logger: logger,
	}
}

// GetProfile обрабатывает GET /api/v1/profiles/{ownerID}
// Возвращает текущее серверное состояние профиля
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if err := validation.ValidateOwnerID(ownerID); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_owner_id", err.Error())
		return
	}

	profile, err := h.store.GetProfile(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			h.writeError(w, http.StatusNotFound, "not_found", "profile does not exist")
			return
		}
		h.logger.Error("failed to get profile",
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to get profile")
		return
	}

	h.writeJSON(w, http.StatusOK, api.Profile{
		OwnerID:   profile.OwnerID,
		Fields:    profile.Fields,
		UpdatedAt: profile.UpdatedAt,
	})
}

// UpdateProfile обрабатывает PUT /api/v1/profiles/{ownerID}
// Применяет частичное обновление полей профиля
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if err := validation.ValidateOwnerID(ownerID); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_owner_id", err.Error())
		return
	}

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "failed to decode request body")
		return
	}
	if len(req.Fields) == 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}
	for name := range req.Fields {
		if err := validation.ValidateFieldName(name); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid_field", err.Error())
			return
		}
	}

	profile, err := h.store.UpsertProfile(r.Context(), ownerID, req.Fields)
	if err != nil {
		h.logger.Error("failed to upsert profile",
			slog.String("owner_id", ownerID),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to update profile")
		return
	}

	h.logger.Info("profile updated",
		slog.String("owner_id", ownerID),
		slog.Int("fields", len(req.Fields)))

	h.writeJSON(w, http.StatusOK, api.UpdateProfileResponse{
		Status: api.StatusSuccess,
		Profile: &api.Profile{
			OwnerID:   profile.OwnerID,
			Fields:    profile.Fields,
			UpdatedAt: profile.UpdatedAt,
		},
	})
}

func (h *ProfileHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *ProfileHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
