package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"go_vocab_drill/internal/config"
	"go_vocab_drill/internal/learning"
	"go_vocab_drill/internal/logging"
	"go_vocab_drill/internal/middleware"
	"go_vocab_drill/internal/model"
	"go_vocab_drill/internal/repository"
	"go_vocab_drill/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app はサブコマンドが共有する接続とロガーです。PersistentPreRunE で初期化します。
type app struct {
	configPath string
	logger     *slog.Logger
	db         *gorm.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "drillctl",
		Short:         "Operator CLI for the vocab drill store",
		Long:          `drillctl migrates the review store and inspects the daily session and progress stats without going through the HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(
		newMigrateCmd(a),
		newSessionCmd(a),
		newStatsCmd(a),
	)
	return rootCmd
}

func (a *app) open(cmd *cobra.Command) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))
	if err := config.LoadConfig(a.configPath); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.logger = logging.New(cmd.ErrOrStderr(), config.Cfg.Log.Level)
	slog.SetDefault(a.logger)

	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, a.logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	a.db = db
	cmd.SetContext(middleware.WithLogger(cmd.Context(), a.logger))
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.Migrate(a.db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration completed")
			return nil
		},
	}
}

func newSessionCmd(a *app) *cobra.Command {
	var goal int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Compose today's session and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewSessionService(a.db, repository.NewGormRecordRepository(), learning.NewComposer(), config.Cfg.App)
			plan, err := svc.GetDailySession(cmd.Context(), goal)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			return printPlan(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().IntVar(&goal, "goal", 0, "number of pairs (0 uses app.daily_goal)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print progress statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewStatsService(a.db, repository.NewGormItemRepository(), repository.NewGormRecordRepository())
			stats, err := svc.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			return printStats(cmd.OutOrStdout(), stats)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stats as JSON")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPlan(w io.Writer, plan *model.DailySessionPlan) error {
	if plan.IsComplete() {
		_, err := fmt.Fprintln(w, "nothing to study today")
		return err
	}
	fmt.Fprintf(w, "goal=%d pairs=%d mistakes=%d reviews=%d fresh=%d\n",
		plan.DailyGoal, len(plan.Pairs), plan.MistakeCount, plan.ReviewCount, plan.FreshCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tHEADWORD\tSENTENCE")
	for _, p := range plan.Pairs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Source, p.Item.Headword, p.Sentence.Text)
	}
	return tw.Flush()
}

func printStats(w io.Writer, stats *model.StatsResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "items\t%d\n", stats.TotalItems)
	fmt.Fprintf(tw, "records\t%d\n", stats.Records.TotalRecords)
	fmt.Fprintf(tw, "average interval\t%.1f days\n", stats.Records.AverageInterval)
	fmt.Fprintf(tw, "mastered\t%d\n", stats.Records.MasteredPairs)
	fmt.Fprintf(tw, "mistakes\t%d\n", stats.Records.MistakePairs)
	fmt.Fprintf(tw, "learned today\t%d\n", stats.Today.LearnedToday)
	fmt.Fprintf(tw, "reviewed today\t%d\n", stats.Today.ReviewedToday)
	fmt.Fprintf(tw, "accuracy today\t%.1f%%\n", stats.Today.Accuracy)
	return tw.Flush()
}
