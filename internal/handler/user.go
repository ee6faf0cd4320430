package handler

import (
	"errors"
	"net/http"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	"github.com/clearsight-dev/clearsight/backend/internal/repository"
)

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)
	h.writeJSON(w, r, http.StatusOK, user)
}

// UpdateMyPersona 更新当前会话用户的 persona。
// 顺序固定：先鉴权（auth 中间件）、再校验枚举、最后才触碰存储；
// 目标用户只能来自会话，客户端没有任何办法指定别人的 ID。
func (h *Handler) UpdateMyPersona(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(UserIDCtxKey).(int64)

	var req struct {
		Persona string `json:"persona"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid persona type")
		return
	}

	persona := domain.Persona(req.Persona)
	if !persona.IsValid() {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid persona type")
		return
	}

	updatedUser, err := h.repository.UpdateUserPersona(r.Context(), userID, persona)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			// 正常情况下到不了这里，会话存在即用户存在
			h.errorResponse(w, r, http.StatusNotFound, "User not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, updatedUser)
}
