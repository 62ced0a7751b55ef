package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/titanhire/titanhire/internal/auth"
	"github.com/titanhire/titanhire/internal/config"
	"github.com/titanhire/titanhire/internal/generator"
	"github.com/titanhire/titanhire/internal/server"
	"github.com/titanhire/titanhire/internal/session"
	"github.com/titanhire/titanhire/internal/storage"
)

var (
	servePort    int
	serveConfig  string
	serveDataDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the hiring workflow: identity, the job collection and per-stage document generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for the file-backed store")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		DataDir:     serveDataDir,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		Port:        8080,
		DataDir:     "data",
		GeminiModel: generator.DefaultGeminiModel,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	var closers []func()

	// Storage backend: PostgreSQL when a database URL is set, otherwise
	// the file-backed store.
	var store storage.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, pg.Close)
		store = pg
		log.Println("Using PostgreSQL storage")
	} else {
		fileStore, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open data directory: %w", err)
		}
		store = fileStore
		log.Printf("Using file storage in %s", cfg.DataDir)
	}

	// Generation backend: Gemini when an API key is set, otherwise the
	// deterministic template generator.
	var gen generator.Generator
	if cfg.APIKey != "" {
		gemini, err := generator.NewGemini(ctx, cfg.APIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		closers = append(closers, func() { _ = gemini.Close() })
		gen = gemini
		log.Printf("Using Gemini generation (%s)", cfg.GeminiModel)
	} else {
		gen = generator.NewStub()
		log.Println("Using template generation (no GEMINI_API_KEY set)")
	}
	gen = generator.WithTimeout(gen, generator.DefaultTimeout)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	tokens := auth.NewJWTService(jwtConfig)
	identity := auth.WithFallback(auth.NewLocal(store, passwordConfig, tokens))

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Session:   session.New(storage.NewAdapter(store)),
		Generator: gen,
		Auth:      identity,
		Tokens:    tokens,
		Closers:   closers,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
