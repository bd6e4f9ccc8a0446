package cmd

import (
	"fmt"
	"os"

	"asset-cache/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the asset-cache command tree.
var RootCmd = &cobra.Command{
	Use:   "asset-cache",
	Short: "Asset cache for images, textures and sounds",
	Long: `asset-cache batch-loads PNG and WAV files from a directory tree or a bucket
into named caches, renders text placeholders and serves an inspector API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs RootCmd and exits with status 1 when a command fails.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// The debug preset gives readable timestamps on the console.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	}
	os.Exit(1)
}

func init() {
	RootCmd.PersistentFlags().String("env", ".", "directory holding the .env file")
}
