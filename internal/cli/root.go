// Package cli implementa o comando majors, que roda as mesmas análises da API sobre um CSV local
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/college-majors-api/infrastructure/repository"
	"github.com/vfg2006/college-majors-api/internal/config"
	"github.com/vfg2006/college-majors-api/internal/usecases/analyzing"
	"github.com/vfg2006/college-majors-api/pkg/utils"
)

const defaultFile = "./data/college_salary_data.csv"

type rootOptions struct {
	file    string
	lenient bool
	compact bool
	debug   bool
}

func Execute() {
	decimal.MarshalJSONWithoutQuotes = true

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "majors",
		Short:        "Análise de salários por curso universitário",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logrus.SetOutput(os.Stderr)
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", defaultFile, "CSV com as colunas Undergraduate Major, Starting Median Salary, Mid-Career Median Salary e Group")
	cmd.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "ignora linhas inválidas em vez de falhar")
	cmd.PersistentFlags().BoolVar(&opts.compact, "compact", false, "JSON em uma única linha")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "logs detalhados no stderr")

	cmd.AddCommand(metricsCmd(opts))
	cmd.AddCommand(groupsCmd(opts))
	cmd.AddCommand(statsCmd(opts))
	cmd.AddCommand(recommendCmd(opts))
	cmd.AddCommand(personalitiesCmd(opts))

	return cmd
}

// loadAnalyzer lê o arquivo uma única vez e devolve o analisador sobre o snapshot
func loadAnalyzer(ctx context.Context, opts *rootOptions) (analyzing.Analyzer, error) {
	majorRepo := repository.NewMajorRepository(config.Dataset{
		Path:   opts.file,
		Strict: !opts.lenient,
	})

	snapshot, err := majorRepo.Reload(ctx)
	if err != nil {
		return nil, err
	}

	if snapshot.Skipped > 0 {
		logrus.WithField("skipped", snapshot.Skipped).Warn("Linhas inválidas ignoradas")
	}

	return analyzing.NewService(majorRepo), nil
}

func writeOutput(w io.Writer, opts *rootOptions, value any) error {
	if opts.compact {
		return json.NewEncoder(w).Encode(value)
	}

	out, err := utils.PrettyJson(value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}
