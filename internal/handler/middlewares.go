package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/clearsight-dev/clearsight/backend/internal/repository"
	"github.com/clearsight-dev/clearsight/backend/internal/session"
	"github.com/golang-jwt/jwt/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// auth 校验 cookie 中的令牌：JWT 签名有效且服务端会话仍然存在才放行。
// 未通过时直接返回 401，不做任何校验之外的动作。
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.config.Session.CookieName)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.Session.Secret), nil
		})
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// 登出会删除服务端会话，只有仍然登记在案的令牌才有效
		userID, err := h.sessions.UserID(r.Context(), claims.ID)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrSessionNotFound):
				w.WriteHeader(http.StatusUnauthorized)
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// 会话中的用户 ID 必须和令牌中的一致
		sub, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || sub != userID {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, SessionIDCtxKey, claims.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser 把会话对应的用户记录加载到 context 中
func (h *Handler) currentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(UserIDCtxKey).(int64)

		user, err := h.repository.GetUserByID(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				// 会话指向的用户已不存在，视为未登录
				w.WriteHeader(http.StatusUnauthorized)
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), CurrentUserCtx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
