package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/gestures/internal/app"
	"github.com/dshills/gestures/internal/terminal"
	"github.com/dshills/gestures/internal/trace"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive terminal demo",
	Long: `Draws the configured elements and recognizes gestures made on them with
the mouse and keyboard. Press Esc or Ctrl-C to quit.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	runCmd.Flags().String("record", "", "Record dispatched events to this trace file")
	runCmd.Flags().String("log-file", "", "Write logs to this file instead of discarding them")
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("run needs an interactive terminal; use replay for traces")
	}

	configPath, _ := cmd.Flags().GetString("config")
	scriptPath, _ := cmd.Flags().GetString("script")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	recordPath, _ := cmd.Flags().GetString("record")
	logPath, _ := cmd.Flags().GetString("log-file")

	// The screen owns stdout, so logs go to a file or nowhere.
	opts := app.Options{
		ConfigPath: configPath,
		ScriptPath: scriptPath,
		LogOutput:  io.Discard,
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		opts.LogOutput = f
	}

	registry := prometheus.NewRegistry()
	opts.Registry = registry

	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		srv := serveMetrics(metricsAddr, registry)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				application.Log.Error("metrics server failed", "error", err)
			}
		}()
	}

	var feOpts []terminal.Option
	feOpts = append(feOpts, terminal.WithLogger(application.Log))
	if recordPath != "" {
		f, err := os.Create(recordPath)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		feOpts = append(feOpts, terminal.WithRecorder(trace.NewWriter(f)))
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	fe := terminal.New(screen, application.Tree, feOpts...)
	if err := fe.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer fe.Fini()

	application.OnGesture(func(g app.Gesture) {
		fe.SetStatus(g.Binding.Message)
	})

	err = fe.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveMetrics(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
