package main

import (
	"fmt"
	"os"
	"time"

	"github.com/de-tools/data-probe/pkg/server"
	"github.com/de-tools/data-probe/pkg/services/fixgen"
	"github.com/de-tools/data-probe/pkg/services/quality"
	"github.com/de-tools/data-probe/pkg/services/summary"
	"github.com/de-tools/data-probe/pkg/store/duckdb"
	duckdbreport "github.com/de-tools/data-probe/pkg/store/duckdb/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the dataset quality probe",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PROBE")
	v.AutomaticEnv()

	v.SetDefault("server_addr", ":8080")
	v.SetDefault("db_path", "data-probe.db")
	v.SetDefault("summarizer_model", "openai/gpt-4o-mini")
	v.SetDefault("summarizer_timeout", "60s")

	return v
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := loadConfig()

	var reports duckdbreport.Store
	if dbPath := cfg.GetString("db_path"); dbPath != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
		if err != nil {
			return fmt.Errorf("failed to open report database: %w", err)
		}
		reports, err = duckdbreport.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create report store: %w", err)
		}
		logger.Info().Str("path", dbPath).Msg("report history enabled")
	}

	var summarizer summary.Summarizer
	if baseURL := cfg.GetString("summarizer_base_url"); baseURL != "" {
		summarizer = summary.NewClient(summary.Config{
			BaseURL: baseURL,
			APIKey:  cfg.GetString("summarizer_api_key"),
			Model:   cfg.GetString("summarizer_model"),
			Timeout: cfg.GetDuration("summarizer_timeout"),
		})
		logger.Info().Str("base_url", baseURL).Msg("using external summarizer")
	} else {
		summarizer = summary.NewStatic()
		logger.Info().Msg("no summarizer configured, using static summaries")
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.GetString("server_addr"),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Analyzer: quality.NewAnalyzer(summarizer, reports),
			Fixer:    fixgen.NewGenerator(),
			Reports:  reports,
		},
	})

	return webAPI.Start()
}
