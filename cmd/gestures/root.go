package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gestures",
	Short: "Recognize swipes, repeated clicks and key chords",
	Long: `gestures registers swipe, numbered-click and keystroke interactions on
terminal elements and reports them as they are recognized.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Settings file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringP("script", "s", "", "Lua script that registers gestures")
}
