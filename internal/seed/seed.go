package seed

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/ualumni-dev/ualumni/backend/internal/config"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
	"github.com/ualumni-dev/ualumni/backend/internal/repository"
	"github.com/ualumni-dev/ualumni/backend/internal/utils"
)

const alumniCount = 50

var languages = []string{
	"Español", "Inglés", "Portugués", "Francés", "Italiano", "Alemán",
}

var technicalSkills = []string{
	"Go", "TypeScript", "PostgreSQL", "Docker", "Kubernetes", "React",
	"Terraform", "Python", "Redis", "RabbitMQ",
}

var industriesOfInterest = []string{
	"Banca", "Telecomunicaciones", "Consultoría", "Educación", "Salud",
	"Comercio electrónico", "Energía",
}

var contractTypes = []string{
	"Tiempo completo", "Medio tiempo", "Pasantía", "Por honorarios",
}

var jobOffers = []domain.JobOffer{
	{CompanyEmail: "talento@bancaribe.example", Position: "Backend Developer", Description: "Servicios de pagos en Go"},
	{CompanyEmail: "rrhh@telcove.example", Position: "Data Engineer", Description: "Plataforma de datos de red"},
	{CompanyEmail: "people@consultia.example", Position: "Fullstack Developer", Description: "Aplicaciones para clientes corporativos"},
}

// Run fills the database with development data. Conflicts with already
// seeded rows are skipped so the seeder can be re-run.
func Run(cfg *config.Config, repo *repository.Repository) {
	ctx := context.Background()

	for _, name := range languages {
		if err := repo.CreateLanguage(ctx, &domain.Language{Name: name}); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			slog.Error("unable to seed language", "name", name, "error", err)
			return
		}
	}

	for _, name := range technicalSkills {
		if err := repo.CreateTechnicalSkill(ctx, &domain.TechnicalSkill{Name: name}); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			slog.Error("unable to seed technical skill", "name", name, "error", err)
			return
		}
	}

	for _, name := range industriesOfInterest {
		if err := repo.CreateIndustryOfInterest(ctx, &domain.IndustryOfInterest{Name: name}); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			slog.Error("unable to seed industry of interest", "name", name, "error", err)
			return
		}
	}

	for _, name := range contractTypes {
		if err := repo.CreateContractType(ctx, &domain.ContractType{Name: name}); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			slog.Error("unable to seed contract type", "name", name, "error", err)
			return
		}
	}

	for _, offer := range jobOffers {
		o := offer
		if err := repo.CreateJobOffer(ctx, &o); err != nil {
			slog.Error("unable to seed job offer", "position", o.Position, "error", err)
			return
		}
	}

	for i := 0; i < alumniCount; i++ {
		user, err := utils.GenerateRandomAlumni(cfg.Seed.Alumni.Password, "ualumni.example", cfg.Password.BcryptCost)
		if err != nil {
			slog.Error("unable to generate random alumni", "error", err)
			return
		}

		if err := repo.CreateAlumni(ctx, user); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				// generated email collided, just skip it
				continue
			}
			slog.Error("unable to seed alumni", "email", user.Email, "error", err)
			return
		}

		// give each resume a few languages
		for _, name := range randomSubset(languages, rand.Intn(3)+1) {
			rl := &domain.ResumeLanguage{
				AlumniEmail:  user.Email,
				LanguageName: name,
				MasteryLevel: int32(rand.Intn(5) + 1),
			}
			if err := repo.AddResumeLanguage(ctx, rl); err != nil {
				slog.Error("unable to seed resume language", "email", user.Email, "error", err)
				return
			}
		}
	}

	slog.Info("seeding finished", "alumni", alumniCount)
}

// randomSubset picks n distinct items with a Fisher-Yates shuffle.
func randomSubset(items []string, n int) []string {
	shuffled := append([]string{}, items...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
