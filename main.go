package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"hassha/internal/cache"
	"hassha/internal/config"
	"hassha/internal/melody"
	"hassha/internal/player"
)

const logLevelEnv = "HASSHA_LOG_LEVEL"

var version = "0.1.0"

// newPlayer is swapped out in tests.
var newPlayer = func() player.Player { return player.New() }

var rootCmd = &cobra.Command{
	Use:           "hassha",
	Short:         "Play JR East departure melodies on coding-agent hook events",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(os.Getenv(logLevelEnv))
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hassha: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs a stderr text logger. Hooks run inside the agent's
// terminal, so anything below warn is opt-in.
func setupLogging(level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newCache(cfg config.Config) *cache.Cache {
	return cache.New(cfg.CacheDir(), melody.NewRegistry(), cache.WithLogger(slog.Default()))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// truncate keeps at most max runes of s.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
