// Package studioctl implements the operator CLI for the studio tools and
// the site inbox.
package studioctl

import (
	"context"
	"fmt"

	entrypoint "github.com/louisbranch/gameforge/internal/platform/cmd"
	"github.com/spf13/cobra"
)

// Config holds the environment defaults shared with the site command.
// Flags override every value.
type Config struct {
	DBPath     string `env:"GAMEFORGE_SITE_DB_PATH" envDefault:"data/site.db"`
	HealthAddr string `env:"GAMEFORGE_SITE_GRPC_ADDR" envDefault:"localhost:8081"`
}

// NewRootCommand builds the studioctl command tree. An invalid environment
// fails every command before it runs.
func NewRootCommand() *cobra.Command {
	var cfg Config
	cfgErr := entrypoint.ParseConfig(&cfg)
	root := &cobra.Command{
		Use:           "studioctl",
		Short:         "Operate the game studio tools and site inbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if cfgErr != nil {
				return fmt.Errorf("load studioctl config: %w", cfgErr)
			}
			return nil
		},
	}
	root.AddCommand(
		posterCmd(),
		optimizeCmd(),
		scaffoldCmd(),
		inboxCmd(cfg),
		contentCmd(),
		healthCmd(cfg),
	)
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
