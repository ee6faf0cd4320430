package handler

import (
	"net/http"

	"github.com/clearsight-dev/clearsight/backend/internal/dashboard"
	"github.com/clearsight-dev/clearsight/backend/internal/domain"
)

func (h *Handler) GetPipelines(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	if user.Persona == nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Persona not selected")
		return
	}

	h.writeJSON(w, r, http.StatusOK, dashboard.PipelinesFor(*user.Persona))
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	if user.Persona == nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Persona not selected")
		return
	}

	h.writeJSON(w, r, http.StatusOK, dashboard.MetricsFor(*user.Persona))
}

func (h *Handler) GetAgents(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, dashboard.Agents())
}
