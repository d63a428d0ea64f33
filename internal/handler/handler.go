package handler

import (
	"github.com/articard-dev/guard-journal/backend/internal/config"
	"github.com/articard-dev/guard-journal/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	accessHash  []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// the journal is guarded by one shared password; hash it once at start-up
	// so login compares it like any other credential
	accessHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AccessPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		accessHash:  accessHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/check", h.CheckAuth)
	})

	// everything below requires a valid session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", h.CreateShift)
			r.Get("/", h.GetAllShifts)

			r.Route("/by-month/{year}/{month}", func(r chi.Router) {
				r.Get("/", h.GetShiftsByMonth)
				r.Delete("/", h.DeleteShiftsByMonth)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shift)
				r.Get("/", h.GetShift)
				r.Patch("/", h.UpdateShift)
				r.Delete("/", h.DeleteShift)

				r.Route("/incidents", func(r chi.Router) {
					r.Post("/", h.AddIncident)
					r.Patch("/{incidentID}", h.UpdateIncident)
					r.Delete("/{incidentID}", h.RemoveIncident)
				})
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Post("/", h.CreateShiftTemplate)
			r.Get("/", h.GetAllShiftTemplates)
			r.Delete("/{id}", h.DeleteShiftTemplate)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly/{year}/{month}", h.GetMonthlyReport)
			r.Post("/monthly/{year}/{month}/email", h.EmailMonthlyReport)
			r.Get("/daily/{date}", h.GetDailyReport)
		})
	})
}
