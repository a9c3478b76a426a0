package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/infrastructure/metrics"
	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

// Handler translates HTTP requests into registry use-case calls.
type Handler struct {
	registry   input.RegistryUseCase
	translator output.T
	log        *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(registry input.RegistryUseCase, translator output.T, log *zap.Logger) *Handler {
	return &Handler{
		registry:   registry,
		translator: translator,
		log:        log,
	}
}

// activityResponse is the wire shape of one activity. The name is the key
// of the enclosing object, not repeated in the value.
type activityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityResponse(a entities.Activity) activityResponse {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return activityResponse{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.registry.ListActivities(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	out := make(map[string]activityResponse, len(activities))
	for _, a := range activities {
		out[a.Name] = toActivityResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := h.requireEmail(w, r)
	if !ok {
		return
	}
	msg, err := h.registry.Signup(r.Context(), locale(r), name, email)
	metrics.SignupsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := h.requireEmail(w, r)
	if !ok {
		return
	}
	msg, err := h.registry.Unregister(r.Context(), locale(r), name, email)
	metrics.UnregistrationsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, msg)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root redirects to the activity listing, the closest thing the API has to
// a landing page.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/activities", http.StatusTemporaryRedirect)
}

func (h *Handler) requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeDetail(w, http.StatusBadRequest, h.translator.T(locale(r), "errors.email_required", nil))
		return "", false
	}
	return email, true
}

func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	loc := locale(r)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeDetail(w, http.StatusNotFound, h.translator.T(loc, "errors.activity_not_found", nil))
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeDetail(w, http.StatusBadRequest, h.translator.T(loc, "errors.already_signed_up", nil))
	case errors.Is(err, domain.ErrNotSignedUp):
		writeDetail(w, http.StatusBadRequest, h.translator.T(loc, "errors.not_signed_up", nil))
	default:
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, h.translator.T(loc, "errors.internal", nil))
	}
}

func locale(r *http.Request) string {
	return r.Header.Get("Accept-Language")
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadySignedUp), errors.Is(err, domain.ErrNotSignedUp):
		return "conflict"
	default:
		return "error"
	}
}
