package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/kordlan/harmonia_backend/cmd/http"
	systemcmd "github.com/kordlan/harmonia_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Harmonia musician directory backend.",
	Long: `Harmonia is the backend of a web directory for musicians.
It normalizes member profiles, serves filtered and sorted search over them,
and exposes the genre and instrument vocabularies the directory filters on.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
