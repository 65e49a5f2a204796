package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Gopirudra-hub/MindMark/internal/analytics"
	"github.com/Gopirudra-hub/MindMark/internal/bootstrap"
	"github.com/Gopirudra-hub/MindMark/internal/config"
	"github.com/Gopirudra-hub/MindMark/internal/database"
	"github.com/Gopirudra-hub/MindMark/internal/insights"
	"github.com/Gopirudra-hub/MindMark/internal/quiz"
	"github.com/Gopirudra-hub/MindMark/internal/review"
	"github.com/Gopirudra-hub/MindMark/internal/server"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "mindmark-server",
		Short:         "MindMark learning analytics HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	bookmarks := store.NewDBBookmarkRepository(db)
	categories := store.NewDBCategoryRepository(db)
	questions := store.NewDBQuestionRepository(db)
	attempts := store.NewDBAttemptRepository(db)

	quizService := quiz.NewService(bookmarks, questions, attempts, time.Now)
	scheduler := review.NewScheduler(bookmarks, attempts, questions, cfg.Reviews, time.Now)
	aggregator := analytics.NewAggregator(bookmarks, categories, attempts, time.Now)
	engine := insights.NewEngine(bookmarks, categories, attempts, time.Now)

	handler := server.NewHandler(quizService, scheduler, aggregator, engine, logger)
	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
