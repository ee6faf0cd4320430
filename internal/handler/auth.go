package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	"github.com/clearsight-dev/clearsight/backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// openSession 登记一个服务端会话并把签名后的令牌写入 cookie
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request, user *domain.User) error {
	sessionID := uuid.NewString()
	expiration := time.Now().Add(time.Duration(h.config.Session.Expiration) * time.Second)

	if err := h.sessions.Create(r.Context(), sessionID, user.ID); err != nil {
		return err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatInt(user.ID, 10),
		ExpiresAt: jwt.NewNumericDate(expiration),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	})
	ss, err := token.SignedString([]byte(h.config.Session.Secret))
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	return nil
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username         string         `json:"username" validate:"required"`
		Password         string         `json:"password" validate:"required"`
		Name             string         `json:"name" validate:"required"`
		Email            string         `json:"email" validate:"required,email"`
		DataSource       *string        `json:"dataSource" validate:"omitempty,oneof=SALESFORCE CSV_UPLOAD API MANUAL"`
		DataSourceConfig map[string]any `json:"dataSourceConfig"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 只保存密码哈希，任何地方都不落盘、不打日志明文密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Username:         req.Username,
		PasswordHash:     string(hashedPassword),
		Name:             req.Name,
		Email:            req.Email,
		DataSourceConfig: req.DataSourceConfig,
	}
	if req.DataSource != nil {
		ds := domain.DataSource(*req.DataSource)
		user.DataSource = &ds
	}

	// 新用户的 persona 一律为空，由仓库层保证
	if err := h.repository.CreateUser(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			h.errorResponse(w, r, http.StatusConflict, "Username already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.openSession(w, r, user); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 欢迎邮件投递失败不影响注册，账号此时已经创建成功
	mailMessage := domain.MailMessage{
		Type: "welcome",
		To:   user.Email,
		Data: domain.WelcomeMailData{
			Name:     user.Name,
			Username: user.Username,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailer.Publish(ctx, mailMessage); err != nil {
		slog.Error("无法投递欢迎邮件", "username", user.Username, "error", err)
	}

	h.writeJSON(w, r, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 用户不存在和密码错误返回同一个提示，避免账号枚举
	user, err := h.repository.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			h.errorResponse(w, r, http.StatusUnauthorized, "Invalid username or password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.errorResponse(w, r, http.StatusUnauthorized, "Invalid username or password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.openSession(w, r, user); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// 尽力删除服务端会话，cookie 无效时直接清掉即可
	if cookie, err := r.Cookie(h.config.Session.CookieName); err == nil {
		claims := &jwt.RegisteredClaims{}
		if _, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.Session.Secret), nil
		}); err == nil {
			if err := h.sessions.Delete(r.Context(), claims.ID); err != nil {
				h.internalServerError(w, r, err)
				return
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:    h.config.Session.CookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	w.WriteHeader(http.StatusOK)
}
