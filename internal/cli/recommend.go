package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/college-majors-api/internal/domain"
	"github.com/vfg2006/college-majors-api/internal/usecases/recommending"
)

func recommendCmd(opts *rootOptions) *cobra.Command {
	var (
		weights     domain.PriorityWeights
		preferred   []string
		personality string
		top         int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ranking de cursos pelas prioridades informadas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := domain.RecommendationParams{
				Weights:     weights,
				Personality: personality,
				TopK:        top,
			}

			for _, value := range preferred {
				group, ok := domain.ParseGroup(value)
				if !ok {
					return fmt.Errorf("grupo inválido: %s", value)
				}
				params.PreferredGroups = append(params.PreferredGroups, group)
			}

			analyzer, err := loadAnalyzer(cmd.Context(), opts)
			if err != nil {
				return err
			}

			result, err := recommending.NewService(analyzer, nil).Recommend(params)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), opts, result)
		},
	}

	cmd.Flags().Float64Var(&weights.StartingSalary, "starting", 0.3, "peso do salário inicial")
	cmd.Flags().Float64Var(&weights.MidCareerSalary, "mid-career", 0.4, "peso do salário mid-career")
	cmd.Flags().Float64Var(&weights.Growth, "growth", 0.2, "peso do crescimento")
	cmd.Flags().Float64Var(&weights.Category, "category", 0.1, "peso dos grupos preferidos")
	cmd.Flags().Float64Var(&weights.Satisfaction, "satisfaction", 0, "peso da satisfação na carreira (requer as colunas de satisfação no CSV)")
	cmd.Flags().StringSliceVar(&preferred, "preferred", nil, "grupos preferidos")
	cmd.Flags().StringVar(&personality, "personality", "", "perfil de personalidade (Analytical, Creative, People-Oriented, Business-Minded)")
	cmd.Flags().IntVarP(&top, "top", "k", 0, "quantidade de recomendações (0 usa o padrão)")

	return cmd
}

func personalitiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "personalities",
		Short: "Lista os perfis de personalidade",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeOutput(cmd.OutOrStdout(), opts, recommending.Personalities())
		},
	}
}
