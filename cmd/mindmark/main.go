package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/Gopirudra-hub/MindMark/internal/cli"
	"github.com/Gopirudra-hub/MindMark/internal/config"
	"github.com/Gopirudra-hub/MindMark/internal/database"
	"github.com/Gopirudra-hub/MindMark/internal/generation/openai"
	"github.com/Gopirudra-hub/MindMark/internal/insights"
	"github.com/Gopirudra-hub/MindMark/internal/quiz"
	"github.com/Gopirudra-hub/MindMark/internal/review"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

var configFile string

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "mindmark",
		Short:         "Turn saved bookmarks into spaced-repetition quizzes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newReviewCommand(),
		newAnalyzeCommand(),
		newInsightsCommand(),
		newGenerateCommand(),
		newDataCommand(),
		newMigrateCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func openDatabase() (*config.Config, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, db, nil
}

// repositories bundles every store repository over one connection.
type repositories struct {
	bookmarks  store.BookmarkRepository
	categories store.CategoryRepository
	tags       store.TagRepository
	questions  store.QuestionRepository
	attempts   store.AttemptRepository
}

func newRepositories(db *sqlx.DB) repositories {
	return repositories{
		bookmarks:  store.NewDBBookmarkRepository(db),
		categories: store.NewDBCategoryRepository(db),
		tags:       store.NewDBTagRepository(db),
		questions:  store.NewDBQuestionRepository(db),
		attempts:   store.NewDBAttemptRepository(db),
	}
}

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Run today's interactive review session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			repos := newRepositories(db)

			scheduler := review.NewScheduler(repos.bookmarks, repos.attempts, repos.questions, cfg.Reviews, time.Now)
			quizService := quiz.NewService(repos.bookmarks, repos.questions, repos.attempts, time.Now)

			return cli.NewReviewCLI(scheduler, quizService, os.Stdin, os.Stdout).Run(cmd.Context())
		},
	}
}

func newInsightsCommand() *cobra.Command {
	var categoryID, bookmarkID int64

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show rule-based findings about your learning",
		RunE: func(cmd *cobra.Command, args []string) error {
			if categoryID != 0 && bookmarkID != 0 {
				return fmt.Errorf("--category and --bookmark are mutually exclusive")
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			repos := newRepositories(db)

			engine := insights.NewEngine(repos.bookmarks, repos.categories, repos.attempts, time.Now)

			ctx := cmd.Context()
			switch {
			case categoryID != 0:
				return cli.RunCategoryInsights(ctx, os.Stdout, engine, categoryID)
			case bookmarkID != 0:
				return cli.RunBookmarkInsights(ctx, os.Stdout, engine, bookmarkID)
			}
			return cli.RunInsights(ctx, os.Stdout, engine)
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Scope insights to one category ID")
	cmd.Flags().Int64Var(&bookmarkID, "bookmark", 0, "Scope insights to one bookmark ID")
	return cmd
}

func newGenerateCommand() *cobra.Command {
	var bookmarkID int64
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh question set for a bookmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			repos := newRepositories(db)

			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is not set")
			}
			client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.RetryAttempts)
			defer func() { _ = client.Close() }()

			return cli.RunGenerateQuestions(cmd.Context(), os.Stdout, repos.bookmarks, repos.questions, client, bookmarkID, count)
		},
	}

	cmd.Flags().Int64Var(&bookmarkID, "bookmark", 0, "Bookmark ID to generate questions for")
	cmd.Flags().IntVar(&count, "count", 5, "How many questions to request")
	_ = cmd.MarkFlagRequired("bookmark")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}
