package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/joblink-dev/admin-console/backend/internal/config"
	"github.com/joblink-dev/admin-console/backend/internal/console"
	"github.com/joblink-dev/admin-console/backend/internal/domain"
	"github.com/joblink-dev/admin-console/backend/internal/repository"
	"github.com/joblink-dev/admin-console/backend/internal/upstream"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	platform    *upstream.Client

	// 每类平台记录各持有一份内存快照
	admins     *console.Store[domain.AdminRecord]
	users      *console.Store[domain.UserRecord]
	assistants *console.Store[domain.AssistantRecord]
	payments   *console.Store[domain.PaymentRecord]

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, platform *upstream.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		platform:    platform,

		admins:     console.NewStore(platform.FetchAdmins),
		users:      console.NewStore(platform.FetchUsers),
		assistants: console.NewStore(platform.FetchAssistants),
		payments:   console.NewStore(platform.FetchPayments),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		// 控制台操作员账号管理
		r.Route("/operators", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Post("/", h.CreateOperator)
			r.Get("/", h.GetAllOperators)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.operatorInfo)
				r.Get("/", h.GetOperatorInfo)
				r.With(h.preventOperateInitialOperator).With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Patch("/", h.UpdateOperator)
				r.With(h.preventOperateInitialOperator).With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Delete("/", h.DeleteOperator)
				r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Patch("/password", h.UpdateOperatorPassword)
			})
		})

		// 平台数据列表，筛选参数见 parseFilters
		r.Route("/admins", func(r chi.Router) {
			r.Get("/", h.GetAdmins)
			r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Delete("/{id}", h.DeleteAdmin)
		})
		r.Get("/users", h.GetUsers)
		r.Get("/assistants", h.GetAssistants)
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.GetPayments)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPayment)
				r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Post("/verify", h.VerifyPayment)
			})
		})

		r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleSuperAdmin})).Get("/audit-entries", h.GetRecentAuditEntries)
	})
}
