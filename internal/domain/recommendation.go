package domain

// PriorityWeights são os pesos escolhidos pelo usuário, cada um >= 0
type PriorityWeights struct {
	StartingSalary  float64 `json:"starting_salary" validate:"gte=0"`
	MidCareerSalary float64 `json:"mid_career_salary" validate:"gte=0"`
	Growth          float64 `json:"growth" validate:"gte=0"`
	Category        float64 `json:"category" validate:"gte=0"`
	Satisfaction    float64 `json:"satisfaction" validate:"gte=0"`
}

// Total soma todos os pesos
func (w PriorityWeights) Total() float64 {
	return w.StartingSalary + w.MidCareerSalary + w.Growth + w.Category + w.Satisfaction
}

type RecommendationParams struct {
	Weights         PriorityWeights `json:"weights"`
	PreferredGroups []Group         `json:"preferred_groups" validate:"dive,oneof=STEM Business HASS"`
	Personality     string          `json:"personality,omitempty"`
	TopK            int             `json:"top_k" validate:"gte=0"`
}

// ScoreBreakdown detalha a contribuição ponderada de cada componente
type ScoreBreakdown struct {
	StartingSalary   float64 `json:"starting_salary"`
	MidCareerSalary  float64 `json:"mid_career_salary"`
	Growth           float64 `json:"growth"`
	Category         float64 `json:"category"`
	Satisfaction     float64 `json:"satisfaction"`
	PersonalityBonus float64 `json:"personality_bonus"`
}

type Recommendation struct {
	Rank             int            `json:"rank"`
	Major            EnrichedMajor  `json:"major"`
	Score            float64        `json:"score"`
	MatchPercentage  float64        `json:"match_percentage"`
	PersonalityMatch bool           `json:"personality_match"`
	Breakdown        ScoreBreakdown `json:"breakdown"`
}

// PriorityBreakdown são os pesos normalizados em porcentagem
type PriorityBreakdown struct {
	StartingSalary  float64 `json:"starting_salary"`
	MidCareerSalary float64 `json:"mid_career_salary"`
	Growth          float64 `json:"growth"`
	Category        float64 `json:"category"`
	Satisfaction    float64 `json:"satisfaction"`
}

// Alternatives mostra o ranking caso uma única prioridade fosse considerada
type Alternatives struct {
	ByStartingSalary  []EnrichedMajor `json:"by_starting_salary"`
	ByMidCareerSalary []EnrichedMajor `json:"by_mid_career_salary"`
	ByGrowth          []EnrichedMajor `json:"by_growth"`
	BySatisfaction    []EnrichedMajor `json:"by_satisfaction"`
}

type RecommendationResult struct {
	Priorities         PriorityBreakdown `json:"priorities"`
	Recommendations    []Recommendation  `json:"recommendations"`
	PersonalityMatches []string          `json:"personality_matches"`
	Alternatives       Alternatives      `json:"alternatives"`
}

type PersonalityProfile struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	RecommendedMajors []string `json:"recommended_majors"`
	Strengths         []string `json:"strengths"`
	GrowthAreas       []string `json:"growth_areas"`
}
