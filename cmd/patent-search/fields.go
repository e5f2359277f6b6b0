// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-search/internal/search"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the searchable fields of the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, log, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		v, err := search.NewDSAPIBackend(cfg.Search).Fields(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
