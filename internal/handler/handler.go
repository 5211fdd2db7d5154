package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/ualumni-dev/ualumni/backend/internal/config"
	"github.com/ualumni-dev/ualumni/backend/internal/pdf"
	"github.com/ualumni-dev/ualumni/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	pdfGen      *pdf.Generator

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

	// notblank rejects whitespace-only values that pass required/min
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, err
	}
	if err := validate.RegisterTranslation("notblank", trans,
		func(ut ut.Translator) error {
			return ut.Add("notblank", "{0} cannot be blank", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("notblank", fe.Field())
			return t
		},
	); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		pdfGen:      pdf.NewGenerator(cfg.Resume.TemplatePath),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/alumni", func(r chi.Router) {
		r.Post("/", h.CreateAlumni)
		r.Get("/", h.GetAlumniPageRandomly)
		r.Route("/{email}", func(r chi.Router) {
			r.Get("/", h.GetAlumni)
			r.Patch("/", h.UpdateAlumni)
			r.Delete("/", h.DeleteAlumni)
			r.Post("/verification", h.SendVerification)
			r.Route("/resume", func(r chi.Router) {
				r.Get("/export", h.ExportResume)
				r.Route("/language", func(r chi.Router) {
					r.Post("/", h.AddResumeLanguage)
					r.Get("/", h.GetResumeLanguages)
					r.Delete("/{name}", h.RemoveResumeLanguage)
				})
			})
		})
	})

	h.Mux.Get("/auth/confirm", h.ConfirmVerification)

	h.Mux.Route("/language", func(r chi.Router) {
		r.Post("/", h.CreateLanguage)
		r.Get("/", h.GetLanguagePage)
		r.Delete("/{name}", h.DeleteLanguage)
	})

	h.Mux.Route("/technical-skill", func(r chi.Router) {
		r.Post("/", h.CreateTechnicalSkill)
		r.Get("/", h.GetTechnicalSkillPage)
		r.Delete("/{name}", h.DeleteTechnicalSkill)
	})

	h.Mux.Route("/industry-of-interest", func(r chi.Router) {
		r.Post("/", h.CreateIndustryOfInterest)
		r.Get("/", h.GetIndustryOfInterestPage)
		r.Delete("/{name}", h.DeleteIndustryOfInterest)
	})

	h.Mux.Route("/contract-type", func(r chi.Router) {
		r.Post("/", h.CreateContractType)
		r.Get("/", h.GetContractTypePage)
		r.Delete("/{name}", h.DeleteContractType)
	})

	h.Mux.Route("/job-offer", func(r chi.Router) {
		r.Post("/", h.CreateJobOffer)
		r.Get("/{id}", h.GetJobOffer)
	})

	h.Mux.Post("/mailing/resume", h.SendResumeToCompany)
}
