package handler

import (
	"github.com/clearsight-dev/clearsight/backend/internal/config"
	"github.com/clearsight-dev/clearsight/backend/internal/mailer"
	"github.com/clearsight-dev/clearsight/backend/internal/repository"
	"github.com/clearsight-dev/clearsight/backend/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository repository.UserRepository
	sessions   session.Store
	translator ut.Translator
	mailer     mailer.Publisher

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo repository.UserRepository, sessions session.Store, mailPublisher mailer.Publisher) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		sessions:   sessions,
		translator: trans,
		mailer:     mailPublisher,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		// 注册和登录不要求已有会话
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)

		// 以下 API 必须要在登录后才允许调用
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.With(h.currentUser).Get("/user", h.GetCurrentUser)
			r.Put("/user/persona", h.UpdateMyPersona)

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(h.currentUser)
				r.Get("/pipelines", h.GetPipelines)
				r.Get("/metrics", h.GetMetrics)
				r.Get("/agents", h.GetAgents)
			})
		})
	})
}
