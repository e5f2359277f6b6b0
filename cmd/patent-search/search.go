// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-search/internal/export"
	"github.com/pdiddy/patent-search/internal/render"
	"github.com/pdiddy/patent-search/internal/results"
	"github.com/pdiddy/patent-search/internal/search"
	"github.com/pdiddy/patent-search/internal/session"
	"github.com/pdiddy/patent-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Search patents by keyword",
	Long: `Search runs one keyword search against the DSAPI dataset and prints the
results table. At most 5 keywords are accepted; they are combined with AND
unless --operator OR is given.

Use --detail to print every field of one row, and --select or --all with
--output to export rows as JSON, YAML or a printable HTML page.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("operator", "AND", "keyword combinator: AND or OR")
	searchCmd.Flags().Int("limit", search.DefaultLimit, "maximum number of rows to request")
	searchCmd.Flags().Int("detail", -1, "print every field of the row at this 1-based position")
	searchCmd.Flags().IntSlice("select", nil, "1-based row positions to export")
	searchCmd.Flags().Bool("all", false, "export every row")
	searchCmd.Flags().String("format", "json", "export format: json, yaml or print")
	searchCmd.Flags().String("output", "", "export file path (- for stdout)")
	searchCmd.Flags().Bool("json", false, "print the raw result set as JSON instead of a table")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	operator, _ := cmd.Flags().GetString("operator")
	limit, _ := cmd.Flags().GetInt("limit")

	req, err := search.BuildRequest(strings.Join(args, " "), operator, limit)
	if err != nil {
		return err
	}

	ctx, cfg, log, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rs, err := search.NewDSAPIBackend(cfg.Search).Search(ctx, req)
	if err != nil {
		return err
	}

	sess := session.New("cli", 0)
	sess.ApplyResults(sess.BeginSearch(), rs)

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	}

	if detail, _ := cmd.Flags().GetInt("detail"); detail > 0 {
		rec, err := sess.Record(detail - 1)
		if err != nil {
			return err
		}
		writeDetail(out, rec)
		return nil
	}

	writeTable(out, rs)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return nil
	}
	positions, _ := cmd.Flags().GetIntSlice("select")
	all, _ := cmd.Flags().GetBool("all")
	if err := applySelection(sess, positions, all); err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	return writeExport(output, format, sess.SelectedRecords())
}

// writeTable prints the summary line and one line per row.
func writeTable(w io.Writer, rs types.ResultSet) {
	fmt.Fprintln(w, render.Summary(rs.Total, rs.Shown))
	if rs.Len() == 0 {
		fmt.Fprintln(w, render.NoResults)
		return
	}

	fmt.Fprintf(w, "%-5s  %-20s  %-20s  %s\n", "#", "ID", "Date", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range results.ToRows(rs.Records) {
		fmt.Fprintf(w, "%-5d  %-20s  %-20s  %s\n", r.SourceIndex+1, r.DisplayID, r.DisplayDate, r.DisplayTitle)
	}
}

// writeDetail prints every non-null field of rec, preferred fields first.
func writeDetail(w io.Writer, rec *types.Record) {
	for _, f := range render.Fields(rec) {
		if strings.Contains(f.Value, "\n") {
			fmt.Fprintf(w, "%s:\n%s\n", f.Label, f.Value)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", f.Label, f.Value)
	}
}

// applySelection marks rows by 1-based position, or every row when all is
// set. It is an error to select nothing.
func applySelection(sess *session.Session, positions []int, all bool) error {
	if all {
		sess.SelectAll(true)
	}
	for _, p := range positions {
		if _, err := sess.Record(p - 1); err != nil {
			return err
		}
		sess.Toggle(p-1, true)
	}
	if !sess.Snapshot().Selection.HasSelection() {
		return fmt.Errorf("nothing selected: use --select or --all with --output")
	}
	return nil
}

func writeExport(path, format string, records []*types.Record) error {
	var data []byte
	if format == "print" {
		data = []byte(export.Printable(records))
	} else {
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		if data, err = export.Encode(records, f); err != nil {
			return err
		}
	}

	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d record(s) to %s\n", len(records), path)
	return nil
}
