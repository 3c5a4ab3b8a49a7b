package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/gestures/internal/app"
	"github.com/dshills/gestures/internal/interaction"
	"github.com/dshills/gestures/internal/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay TRACE",
	Short: "Replay a recorded trace and print the recognized gestures",
	Long: `Feeds a JSON-lines trace (as written by run --record) through the
configured elements on a virtual clock, so recorded delays cost no time.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Bool("realtime", false, "Wait for recorded delays on the wall clock")
}

func runReplay(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	scriptPath, _ := cmd.Flags().GetString("script")
	realtime, _ := cmd.Flags().GetBool("realtime")

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()
	records, err := trace.Parse(f)
	if err != nil {
		return err
	}

	opts := app.Options{
		ConfigPath: configPath,
		ScriptPath: scriptPath,
		LogOutput:  cmd.ErrOrStderr(),
	}
	sleep := trace.Sleep
	var sched *interaction.ManualScheduler
	if !realtime {
		sched = interaction.NewManualScheduler()
		opts.Scheduler = sched
		sleep = func(_ context.Context, d time.Duration) error {
			sched.Advance(d)
			return nil
		}
	}

	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer application.Close()

	out := cmd.OutOrStdout()
	application.OnGesture(func(g app.Gesture) {
		fmt.Fprintf(out, "%s\t%s\t%s\n", g.Element, g.Binding.Gesture, g.Binding.Message)
	})

	n, err := trace.Replay(cmd.Context(), records, application.Tree, sleep)
	if err != nil {
		return err
	}

	// Let the last click burst resolve.
	window := application.Engine.Config().ClickWindow
	if err := sleep(cmd.Context(), window); err != nil {
		return err
	}
	if realtime {
		// Wall-clock timers fire on their own goroutine.
		_ = trace.Sleep(cmd.Context(), window/10)
	}

	application.Log.Debug("replay finished", "records", len(records), "dispatched", n)
	return nil
}
