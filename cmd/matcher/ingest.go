package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Rick03098/recruitment-matcher/internal/config"
	"github.com/Rick03098/recruitment-matcher/internal/ingestion"
	"github.com/Rick03098/recruitment-matcher/internal/observability"
	"github.com/Rick03098/recruitment-matcher/internal/store"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Extract and store candidate records from résumé files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database_url is required (config file or DATABASE_URL)")
		}

		ctx := cmd.Context()
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

		docs, err := readDocuments(args)
		if err != nil {
			return err
		}

		results, err := orchestrator.IngestDocuments(ctx, docs)
		if err != nil {
			return err
		}

		printer := observability.NewPrinter(os.Stdout)
		for _, result := range results {
			if cfg.Verbose {
				printer.PrintCandidate(&result.Record)
			} else {
				fmt.Printf("%s: %s (%d skills)\n", result.Record.Source, result.Record.Name, len(result.Record.Skills))
			}
			if result.SaveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: %s extracted but not saved: %v\n", result.Record.Source, result.SaveErr)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

// readDocuments loads each file and extracts its text.
func readDocuments(paths []string) ([]types.RawDocument, error) {
	docs := make([]types.RawDocument, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		text, err := ingestion.ExtractText(filepath.Base(path), "", data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, types.RawDocument{
			Text:       text,
			SourceName: filepath.Base(path),
			SourceKind: types.SourceFile,
		})
	}
	return docs, nil
}
