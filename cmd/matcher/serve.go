package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rick03098/recruitment-matcher/internal/config"
	"github.com/Rick03098/recruitment-matcher/internal/llm"
	"github.com/Rick03098/recruitment-matcher/internal/pipeline"
	"github.com/Rick03098/recruitment-matcher/internal/server"
	"github.com/Rick03098/recruitment-matcher/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database_url is required (config file or DATABASE_URL)")
		}

		ctx := context.Background()
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		orchestrator, closeExtractor, err := buildOrchestrator(ctx, st, cfg.APIKey)
		if err != nil {
			return err
		}
		defer closeExtractor()

		return server.New(server.Config{Port: cfg.Port}, orchestrator).Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// buildOrchestrator wires the pipeline, with the LLM extraction path enabled
// only when an API key is configured.
func buildOrchestrator(ctx context.Context, st store.Store, apiKey string) (*pipeline.Orchestrator, func(), error) {
	if apiKey == "" {
		return pipeline.New(st, nil), func() {}, nil
	}

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return nil, nil, err
	}
	return pipeline.New(st, llm.NewExtractor(client)), func() { _ = client.Close() }, nil
}
