package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "febra",
	Short: "Febra is a self-hosted daily symptom diary",
	Long: `Febra tracks daily symptom answers and body temperature, assembles
them into a gap-free timeline and exports the diary as CSV or JSON.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}
