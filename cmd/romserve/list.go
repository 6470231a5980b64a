package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sagarc03/romserve"
	"github.com/sagarc03/romserve/config"
	romhttp "github.com/sagarc03/romserve/http"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the asset table",
	Long:  `Load the asset table and print each record's path, length, content type and encoding.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().Bool("json", false, "print the table as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	table, err := loadTable(cfg)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeTableJSON(cmd.OutOrStdout(), table)
	}
	return writeTableText(cmd.OutOrStdout(), table)
}

func writeTableJSON(w io.Writer, table romserve.Table) error {
	entries := table.Entries()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(romhttp.ListResult{Items: entries, Count: len(entries)}); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return nil
}

func writeTableText(w io.Writer, table romserve.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tLENGTH\tCONTENT TYPE\tENCODING")

	for _, a := range table.Entries() {
		encoding := "-"
		if a.Compressed {
			encoding = romserve.EncodingGzip
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", a.Path, a.Length, a.ContentType, encoding)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
