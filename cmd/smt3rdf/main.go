// Command smt3rdf converts the Shin Megami Tensei III demon, race and basic
// fusion tables into RDF datasets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/smt3-rdf/internal/config"
	"github.com/geoknoesis/smt3-rdf/internal/logging"
	"github.com/geoknoesis/smt3-rdf/internal/pipeline"
	"github.com/geoknoesis/smt3-rdf/rdf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command. Flag defaults come from the SMT3RDF_*
// environment, so flags override the environment.
func newRootCmd() *cobra.Command {
	cfg, envErr := config.Load()
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "smt3rdf",
		Short: "Generate a Shin Megami Tensei III demon dataset in RDF",
		Long: `smt3rdf reads demon_simple_info.csv, fusion_basic_rule.csv and
special_fusion.json from the input directory and writes race, demon and
basic_rules datasets plus vocabulary.ttl and game.ttl to the output directory.

With --named-graphs, demons and races are placed in the game graph and fusion
rules in the basic rules graph; Turtle and N-Triples switch to TriG and
N-Quads, and a combined dataset file is written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			var err error
			logger, err = logging.New(cfg.Verbose, cfg.LogJSON)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := pipeline.New(cfg, logger).Run(cmd.Context())
			if err != nil {
				logger.Error("conversion failed",
					zap.String("code", string(rdf.Code(err))),
					zap.Error(err),
				)
				_ = logger.Sync()
				return err
			}
			logger.Info("conversion finished",
				zap.String("format", string(report.Format)),
				zap.Int("artifacts", len(report.Artifacts)),
				zap.String("out_path", cfg.OutPath),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.DemonNamespace, "demon-rdf-namespace", "d", cfg.DemonNamespace, "IRI namespace of the demon dataset")
	flags.StringVarP(&cfg.RaceNamespace, "race-rdf-namespace", "r", cfg.RaceNamespace, "IRI namespace of the race dataset")
	flags.StringVarP(&cfg.VocabularyNamespace, "vocabulary-namespace", "v", cfg.VocabularyNamespace, "IRI namespace of the vocabulary")
	flags.StringVarP(&cfg.GameNamespace, "game-rdf-namespace", "g", cfg.GameNamespace, "IRI namespace of the game")
	flags.StringVarP(&cfg.BasicRulesNamespace, "basic-rules-rdf-namespace", "b", cfg.BasicRulesNamespace, "IRI namespace of the basic rules")
	flags.StringVar(&cfg.VocabularyTemplate, "path-vocabulary", cfg.VocabularyTemplate, "path of the RDF vocabulary template file (default: embedded)")
	flags.StringVar(&cfg.GameTemplate, "path-game", cfg.GameTemplate, "path of the RDF game template file (default: embedded)")
	flags.StringVarP(&cfg.OutPath, "out-path", "o", cfg.OutPath, "output folder of the datasets")
	flags.StringVarP(&cfg.InputDir, "input-dir", "i", cfg.InputDir, "folder of the input tables")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: turtle, trig, ntriples, nquads or jsonld")
	flags.BoolVar(&cfg.NamedGraphs, "named-graphs", cfg.NamedGraphs, "put statements in named graphs")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	flags.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "write logs as JSON")

	return cmd
}
