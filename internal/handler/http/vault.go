package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/internal/store"
	"github.com/neverov-dev/passvault/internal/utils"
	"github.com/neverov-dev/passvault/models"
)

func (h *Handler) listEnvelopes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	envelopes, err := h.services.VaultService.ListEnvelopes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing envelopes")
		writeError(w, "error listing envelopes", http.StatusInternalServerError)
		return
	}

	if envelopes == nil {
		envelopes = []models.VaultEnvelope{}
	}

	utils.WriteJSON(w, models.ListEnvelopesResponse{Items: envelopes}, http.StatusOK)
}

func (h *Handler) createEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.EnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.VaultService.CreateEnvelope(ctx, userID, req.Ciphertext)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCiphertext) {
			log.Err(err).Msg("empty ciphertext provided")
			writeError(w, "empty ciphertext provided", http.StatusBadRequest)
			return
		}

		log.Err(err).Int64("user_id", userID).Msg("error creating envelope")
		writeError(w, "error creating envelope", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.EnvelopeResponse{Item: created}, http.StatusCreated)
}

func (h *Handler) updateEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	envelopeID := chi.URLParam(r, "id")

	var req models.EnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.VaultService.UpdateEnvelope(ctx, userID, envelopeID, req.Ciphertext)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCiphertext) || errors.Is(err, service.ErrEmptyEnvelopeID):
			log.Err(err).Msg("invalid envelope data provided")
			writeError(w, "invalid envelope data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEnvelopeNotFound):
			log.Warn().Str("envelope_id", envelopeID).Int64("user_id", userID).Msg("envelope not found")
			writeError(w, "envelope not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("error updating envelope")
			writeError(w, "error updating envelope", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.EnvelopeResponse{Item: updated}, http.StatusOK)
}

func (h *Handler) deleteEnvelope(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	envelopeID := chi.URLParam(r, "id")

	if err := h.services.VaultService.DeleteEnvelope(ctx, userID, envelopeID); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyEnvelopeID):
			log.Err(err).Msg("invalid envelope id provided")
			writeError(w, "invalid envelope id provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEnvelopeNotFound):
			log.Warn().Str("envelope_id", envelopeID).Int64("user_id", userID).Msg("envelope not found")
			writeError(w, "envelope not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("error deleting envelope")
			writeError(w, "error deleting envelope", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError writes the uniform JSON error body used by all handlers.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
