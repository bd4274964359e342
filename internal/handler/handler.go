package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/omparkhi/JobWeb/internal/config"
	"github.com/omparkhi/JobWeb/internal/domain"
	"github.com/omparkhi/JobWeb/internal/repository"
	"github.com/omparkhi/JobWeb/internal/service"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	service     *service.Service
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, svc *service.Service, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		service:     svc,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(h.auth).Get("/me", h.Me)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	h.Mux.Route("/jobs", func(r chi.Router) {
		// Browse and detail views are public.
		r.Get("/", h.SearchJobs)
		r.Get("/{id}", h.GetJob)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleCompany}))
			r.Post("/", h.CreateJob)
			r.Get("/company/my-jobs", h.GetMyJobs)
			r.Put("/{id}", h.UpdateJob)
			r.Delete("/{id}", h.DeleteJob)
		})
	})

	h.Mux.Route("/applications", func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Post("/", h.CreateApplication)
		r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Get("/candidate/my-applications", h.GetMyApplications)
		r.With(h.RequiredRole([]domain.Role{domain.RoleCompany})).Get("/company/my-applications", h.GetCompanyApplications)
		r.With(h.RequiredRole([]domain.Role{domain.RoleCompany})).Get("/job/{jobID}", h.GetJobApplications)
		r.With(h.RequiredRole([]domain.Role{domain.RoleCompany})).Put("/{id}/status", h.UpdateApplicationStatus)
		r.Get("/{id}", h.GetApplication)
		r.With(h.RequiredRole([]domain.Role{domain.RoleCandidate})).Delete("/{id}", h.DeleteApplication)
	})

	h.Mux.Route("/candidate", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.RequiredRole([]domain.Role{domain.RoleCandidate}))
		r.Get("/profile", h.GetCandidateProfile)
		r.Put("/profile", h.UpdateCandidateProfile)
	})

	h.Mux.Route("/company", func(r chi.Router) {
		// The approved directory is public.
		r.Get("/all", h.ListApprovedCompanies)
		r.Get("/{id}", h.GetCompany)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleCompany}))
			r.Get("/profile", h.GetCompanyProfile)
			r.Post("/profile", h.CreateCompanyProfile)
			r.Put("/profile", h.UpdateCompanyProfile)
		})
	})

	h.Mux.Route("/admin", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
		r.Get("/analytics", h.GetAnalytics)
		r.Get("/users", h.GetAllUsers)
		r.Get("/companies", h.GetAllCompanies)
		r.Get("/companies/pending", h.GetPendingCompanies)
		r.Put("/companies/{id}/approve", h.ApproveCompany)
		r.Put("/companies/{id}/reject", h.RejectCompany)
		r.Get("/jobs", h.GetAllJobs)
		r.Get("/applications", h.GetAllApplications)
		r.Delete("/users/{id}", h.DeleteUser)
		r.Delete("/companies/{id}", h.DeleteCompany)
	})
}
