package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sagarc03/romserve/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "romserve",
	Short:   "Serve a read-only table of static assets over HTTP",
	Long: `romserve serves a fixed table of assets, built once at startup from a
directory or from the embedded demo set. Paths under ignored prefixes are
left to the JSON API and other dynamic handlers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		loadEnvFile(envFile)

		configFiles, _ := cmd.Flags().GetStringSlice("config")
		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg.Env, cfg.Log.Level)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file paths, merged left to right (default: ./romserve.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before config")
	rootCmd.PersistentFlags().String("assets-dir", "", "asset directory (default: embedded demo assets, env: ROMSERVE_ASSETS_DIR)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: ROMSERVE_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("recursive", true, "include files in subdirectories of the asset directory (env: ROMSERVE_ASSETS_RECURSIVE)")
	rootCmd.PersistentFlags().Bool("minify", false, "minify HTML, CSS and JavaScript assets (env: ROMSERVE_ASSETS_MINIFY)")
	rootCmd.PersistentFlags().Bool("compress", false, "gzip compressible assets when smaller (env: ROMSERVE_ASSETS_COMPRESS)")
}

// loadEnvFile exports variables from a dotenv file without overriding the
// real environment. A missing file is not an error.
func loadEnvFile(name string) {
	if name == "" {
		return
	}
	if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("error loading env file", "file", name, "err", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
