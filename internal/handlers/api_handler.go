package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/familybell/bell-scheduler/internal/domain"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"github.com/familybell/bell-scheduler/internal/domain/service"
	"go.uber.org/zap"
)

// APIHandler exposes the bell command surface over HTTP JSON.
type APIHandler struct {
	svc    *service.Instance
	logger *zap.Logger
}

func New(svc *service.Instance, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register mounts all routes on the given mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/data", h.handleGetData)
	mux.HandleFunc("POST /api/bells", h.handleUpsertBell)
	mux.HandleFunc("POST /api/bells/test", h.handleTestBell)
	mux.HandleFunc("DELETE /api/bells/{id}", h.handleDeleteBell)
	mux.HandleFunc("PUT /api/vacation", h.handleSetVacation)
	mux.HandleFunc("PUT /api/settings/tts", h.handleUpdateTTS)
	mux.HandleFunc("GET /health", h.handleHealth)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type commandResponse struct {
	Success bool       `json:"success"`
	Error   *errorBody `json:"error,omitempty"`
}

func (h *APIHandler) handleGetData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Bells.GetData())
}

func (h *APIHandler) handleUpsertBell(w http.ResponseWriter, r *http.Request) {
	var bell entity.Bell
	if err := json.NewDecoder(r.Body).Decode(&bell); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "malformed bell payload")
		return
	}

	if err := h.svc.Bells.UpsertBell(r.Context(), bell); err != nil {
		h.respondCommandError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true})
}

func (h *APIHandler) handleDeleteBell(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.Bells.DeleteBell(r.Context(), id); err != nil {
		h.respondCommandError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true})
}

func (h *APIHandler) handleSetVacation(w http.ResponseWriter, r *http.Request) {
	var vacation entity.Vacation
	if err := json.NewDecoder(r.Body).Decode(&vacation); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "malformed vacation payload")
		return
	}

	if err := h.svc.Bells.SetVacation(r.Context(), vacation); err != nil {
		h.respondCommandError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true})
}

// handleTestBell fires the submitted bell immediately. Delivery problems are a
// result, not a transport failure, so they come back 200 with success=false.
func (h *APIHandler) handleTestBell(w http.ResponseWriter, r *http.Request) {
	var bell entity.Bell
	if err := json.NewDecoder(r.Body).Decode(&bell); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "malformed bell payload")
		return
	}

	if err := h.svc.Bells.TestBell(r.Context(), bell); err != nil {
		code := "delivery_failed"
		if errors.Is(err, domain.ErrNoProviderConfigured) {
			code = "no_provider"
		}
		h.writeJSON(w, http.StatusOK, commandResponse{
			Success: false,
			Error:   &errorBody{Code: code, Message: err.Error()},
		})
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true})
}

func (h *APIHandler) handleUpdateTTS(w http.ResponseWriter, r *http.Request) {
	var defaults entity.TTSDefaults
	if err := json.NewDecoder(r.Body).Decode(&defaults); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_input", "malformed settings payload")
		return
	}

	if err := h.svc.Bells.UpdateGlobalTTS(r.Context(), defaults); err != nil {
		h.respondCommandError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, commandResponse{Success: true})
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// respondCommandError maps service errors to HTTP failures: validation is the
// caller's fault, anything else means the mutation was applied in memory but
// could not be persisted.
func (h *APIHandler) respondCommandError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		h.respondError(w, http.StatusBadRequest, "invalid_input", validationErr.Error())
		return
	}
	h.respondError(w, http.StatusInternalServerError, "persistence_failed", err.Error())
}

func (h *APIHandler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, commandResponse{
		Success: false,
		Error:   &errorBody{Code: code, Message: message},
	})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
