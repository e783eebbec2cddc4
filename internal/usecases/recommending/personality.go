package recommending

import (
	"strings"

	"github.com/vfg2006/college-majors-api/internal/domain"
)

var personalityProfiles = []domain.PersonalityProfile{
	{
		Name:              "Analytical",
		Description:       "Detail-oriented, logical thinkers who enjoy problem-solving",
		RecommendedMajors: []string{"Computer Science", "Mathematics", "Physics", "Economics", "Engineering"},
		Strengths:         []string{"Problem-solving", "Data analysis", "Critical thinking"},
		GrowthAreas:       []string{"Communication", "Leadership", "Creativity"},
	},
	{
		Name:              "Creative",
		Description:       "Innovative, artistic individuals who value self-expression",
		RecommendedMajors: []string{"Drama", "Film", "Graphic Design", "Architecture", "English", "Music"},
		Strengths:         []string{"Innovation", "Communication", "Adaptability"},
		GrowthAreas:       []string{"Technical skills", "Financial planning", "Structure"},
	},
	{
		Name:              "People-Oriented",
		Description:       "Empathetic individuals who enjoy helping and working with others",
		RecommendedMajors: []string{"Psychology", "Education", "Nursing", "Sociology", "Communications", "Hospitality & Tourism"},
		Strengths:         []string{"Teamwork", "Communication", "Empathy"},
		GrowthAreas:       []string{"Technical skills", "Data analysis", "Business acumen"},
	},
	{
		Name:              "Business-Minded",
		Description:       "Strategic thinkers focused on efficiency and results",
		RecommendedMajors: []string{"Business Management", "Finance", "Marketing", "Economics", "Accounting"},
		Strengths:         []string{"Leadership", "Strategic thinking", "Negotiation"},
		GrowthAreas:       []string{"Technical skills", "Creativity", "Work-life balance"},
	},
}

// Personalities retorna uma cópia dos perfis disponíveis
func Personalities() []domain.PersonalityProfile {
	profiles := make([]domain.PersonalityProfile, len(personalityProfiles))
	copy(profiles, personalityProfiles)
	return profiles
}

// FindPersonality busca o perfil pelo nome, ignorando caixa
func FindPersonality(name string) (domain.PersonalityProfile, bool) {
	trimmed := strings.TrimSpace(name)
	for _, profile := range personalityProfiles {
		if strings.EqualFold(profile.Name, trimmed) {
			return profile, true
		}
	}
	return domain.PersonalityProfile{}, false
}

// MatchesPersonality compara o nome do curso com os cursos recomendados do perfil.
// Um curso corresponde quando um nome contém o outro ou quando alguma palavra do
// curso recomendado aparece no nome do curso.
func MatchesPersonality(majorName string, profile domain.PersonalityProfile) bool {
	major := strings.ToLower(majorName)

	for _, recommended := range profile.RecommendedMajors {
		recommended = strings.ToLower(recommended)

		if strings.Contains(major, recommended) || strings.Contains(recommended, major) {
			return true
		}

		for _, word := range strings.Fields(recommended) {
			if strings.Contains(major, word) {
				return true
			}
		}
	}

	return false
}
