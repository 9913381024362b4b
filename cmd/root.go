package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/iwantdrugsxd/mind-ease/cmd/http"
	systemcmd "github.com/iwantdrugsxd/mind-ease/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "mindease",
	Short: "MindEase mental health screening and support platform.",
	Long: `MindEase is a mental health screening and support platform.
It scores standardized questionnaires, escalates concerning results to
clinicians, and offers a supportive chat with self-care guidance.`,
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
