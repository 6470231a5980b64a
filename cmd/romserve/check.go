package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagarc03/romserve/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the asset table",
	Long: `Load the asset table and validate it. Exits non-zero when the table is
malformed. Warns when the default document is missing or an asset sits under an
ignored prefix, where it can never be served.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	// newRouter goes through assetfs.Load, which validates the table.
	router, err := newRouter(cfg)
	if err != nil {
		return fmt.Errorf("check assets: %w", err)
	}

	warnings := 0
	if _, ok := router.Lookup(router.DefaultDocument()); !ok {
		slog.Warn("default document not in table", "path", router.DefaultDocument())
		warnings++
	}

	for _, a := range router.Table().Entries() {
		if router.IsIgnored(a.Path) {
			slog.Warn("asset is under an ignored prefix and will not be served", "path", a.Path)
			warnings++
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d assets, %d warnings\n", router.Table().Len(), warnings)
	return nil
}
