package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rick03098/recruitment-matcher/internal/config"
	"github.com/Rick03098/recruitment-matcher/internal/observability"
	"github.com/Rick03098/recruitment-matcher/internal/pipeline"
	"github.com/Rick03098/recruitment-matcher/internal/store"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

var poolPath string

var matchCmd = &cobra.Command{
	Use:   "match <jd-file>",
	Short: "Rank stored candidates against a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		jdBytes, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}

		var outcome *types.MatchOutcome
		if poolPath != "" {
			// Offline mode: candidate pool from a JSON file, no store.
			pool, err := readPool(poolPath)
			if err != nil {
				return err
			}
			outcome, err = pipeline.New(nil, nil).MatchAgainstPool(string(jdBytes), pool)
			if err != nil {
				return err
			}
		} else {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("database_url is required unless --pool is given")
			}
			st, err := store.Connect(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer st.Close()

			outcome, err = pipeline.New(st, nil).MatchPool(cmd.Context(), string(jdBytes))
			if err != nil {
				return err
			}
		}

		observability.NewPrinter(os.Stdout).PrintMatches(outcome)
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&poolPath, "pool", "", "Path to a JSON file with the candidate pool (offline mode)")
	rootCmd.AddCommand(matchCmd)
}

// readPool loads a candidate pool from a JSON array file.
func readPool(path string) ([]types.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool file: %w", err)
	}
	var pool []types.CandidateRecord
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("failed to parse pool file: %w", err)
	}
	return pool, nil
}
