package cli

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/college-majors-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type filterFlags struct {
	groups []string
	risk   []string
	names  []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.groups, "groups", nil, "grupos (STEM, Business, HASS)")
	cmd.Flags().StringSliceVar(&f.risk, "risk", nil, "níveis de risco (Low, Medium, High)")
	cmd.Flags().StringSliceVar(&f.names, "names", nil, "nomes exatos de cursos")
}

func (f *filterFlags) filters() (domain.MajorFilters, error) {
	var filters domain.MajorFilters

	for _, value := range f.groups {
		group, ok := domain.ParseGroup(value)
		if !ok {
			return filters, fmt.Errorf("grupo inválido: %s", value)
		}
		filters.Groups = append(filters.Groups, group)
	}

	for _, value := range f.risk {
		level, ok := domain.ParseRiskLevel(value)
		if !ok {
			return filters, fmt.Errorf("nível de risco inválido: %s", value)
		}
		filters.RiskLevels = append(filters.RiskLevels, level)
	}

	filters.Names = f.names

	return filters, nil
}

func metricsCmd(opts *rootOptions) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Lista os cursos com spread, crescimento e risco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := flags.filters()
			if err != nil {
				return err
			}

			analyzer, err := loadAnalyzer(cmd.Context(), opts)
			if err != nil {
				return err
			}

			table, err := analyzer.ListMajors(filters)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), opts, table.Rows)
		},
	}

	flags.register(cmd)
	return cmd
}

func groupsCmd(opts *rootOptions) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Resumo por grupo (STEM, Business, HASS)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := flags.filters()
			if err != nil {
				return err
			}

			analyzer, err := loadAnalyzer(cmd.Context(), opts)
			if err != nil {
				return err
			}

			groups, err := analyzer.GetGroupSummaries(filters)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), opts, groups)
		},
	}

	flags.register(cmd)
	return cmd
}

func statsCmd(opts *rootOptions) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Médias e destaques do conjunto selecionado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := flags.filters()
			if err != nil {
				return err
			}

			analyzer, err := loadAnalyzer(cmd.Context(), opts)
			if err != nil {
				return err
			}

			stats, err := analyzer.GetStats(filters)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), opts, stats)
		},
	}

	flags.register(cmd)
	return cmd
}
