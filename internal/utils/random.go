package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ualumni-dev/ualumni/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// GenerateRandomizationSeed produces a seed for the database random-number
// generator; setseed accepts values in [-1, 1].
func GenerateRandomizationSeed() float64 {
	return rand.Float64()
}

var commonNames = []string{
	"María", "José", "Luis", "Ana", "Carlos", "Carmen", "Juan", "Isabel",
	"Pedro", "Sofía", "Andrés", "Gabriela", "Diego", "Valentina", "Rafael",
	"Daniela", "Miguel", "Adriana", "Ricardo", "Mariana",
}

var commonSurnames = []string{
	"González", "Rodríguez", "Pérez", "Hernández", "García", "Martínez",
	"Sánchez", "López", "Díaz", "Rojas", "Blanco", "Fernández", "Torres",
	"Ramírez", "Flores", "Rivas", "Castillo", "Méndez", "Salazar", "Vargas",
}

func GenerateRandomFullName() (names string, surnames string) {
	names = commonNames[rand.Intn(len(commonNames))] + " " + commonNames[rand.Intn(len(commonNames))]
	surnames = commonSurnames[rand.Intn(len(commonSurnames))] + " " + commonSurnames[rand.Intn(len(commonSurnames))]
	return names, surnames
}

// emailLocalPart strips the accents the name lists carry so the generated
// addresses stay plain ASCII.
var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
)

func emailLocalPart(names string, surnames string) string {
	first := strings.ToLower(strings.Fields(names)[0])
	last := strings.ToLower(strings.Fields(surnames)[0])
	return accentReplacer.Replace(fmt.Sprintf("%s.%s%d", first, last, rand.Intn(1000)))
}

func GenerateRandomAlumni(password string, emailDomainName string, bcryptCost int) (*domain.User, error) {
	names, surnames := GenerateRandomFullName()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	telephone := fmt.Sprintf("+58 4%d%d-%07d", rand.Intn(2), rand.Intn(10), rand.Intn(10000000))

	user := &domain.User{
		Email:           emailLocalPart(names, surnames) + "@" + emailDomainName,
		Names:           names,
		Surnames:        surnames,
		PasswordHash:    string(passwordHash),
		Role:            domain.RoleAlumni,
		TelephoneNumber: &telephone,
	}

	return user, nil
}
