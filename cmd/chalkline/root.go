package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	backend "github.com/redis/go-redis/v9"

	"github.com/chalklab/chalkline"
	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/adapters/memory"
	redisadapter "github.com/chalklab/chalkline/pkg/adapters/redis"
	"github.com/chalklab/chalkline/pkg/ports"
	"github.com/chalklab/chalkline/pkg/scenario"
	"github.com/chalklab/chalkline/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "chalkline",
	Short: "Chalkline animates classic algorithms step by step",
	Long: `Chalkline records every comparison, update and swap an algorithm makes
and replays them like a lecturer at a chalkboard. It covers 0/1 knapsack,
longest common subsequence, binary max-heap operations, counting sort and
Strassen matrix multiplication, with a monk mode where you fill in the
board yourself.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for session storage (empty = in-memory)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

func newEngine(cmd *cobra.Command, opts ...chalkline.Option) *chalkline.Engine {
	opts = append(opts, chalkline.WithLogger(newLogger(cmd)))
	return chalkline.New(opts...)
}

// newSessionManager wires the store and locker selected by --redis.
func newSessionManager(cmd *cobra.Command) *session.Manager {
	addr, _ := cmd.Flags().GetString("redis")
	logger := newLogger(cmd)

	if addr == "" {
		return session.NewManager(memory.New(), session.WithLogger(logger))
	}

	client := backend.NewClient(&backend.Options{Addr: addr})
	var store ports.StateStore = redisadapter.NewFromClient(client)
	locker := redisadapter.NewLocker(client, "chalkline:session:")
	return session.NewManager(store,
		session.WithLocker(locker),
		session.WithLogger(logger),
	)
}

// resolveScenario merges a --scenario file with direct flags. Direct flags win.
func resolveScenario(cmd *cobra.Command, args []string) (*scenario.Scenario, error) {
	path, _ := cmd.Flags().GetString("scenario")
	if path != "" {
		return scenario.Load(path)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("specify an algorithm or --scenario file")
	}
	inputs, err := parseInputFlags(cmd)
	if err != nil {
		return nil, err
	}
	return &scenario.Scenario{
		Name:      args[0],
		Algorithm: args[0],
		Inputs:    inputs,
	}, nil
}
