package studioctl

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	platformgrpc "github.com/louisbranch/gameforge/internal/platform/grpc"
	"github.com/louisbranch/gameforge/internal/platform/i18n/catalog"
	"github.com/louisbranch/gameforge/internal/platform/timeouts"
	"github.com/louisbranch/gameforge/internal/services/site/content"
	"github.com/spf13/cobra"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
)

func contentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect embedded site content",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate page bundles and list language fallbacks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pages, err := content.LoadEmbedded()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "content ok: %d pages in %s\n", len(content.Pages()), strings.Join(pages.Languages(), ", "))
			fallbacks := pages.Fallbacks()
			for _, lang := range slices.Sorted(maps.Keys(fallbacks)) {
				names := make([]string, 0, len(fallbacks[lang]))
				for _, page := range fallbacks[lang] {
					names = append(names, string(page))
				}
				fmt.Fprintf(out, "%s falls back to %s for: %s\n", lang, content.BaseLanguage, strings.Join(names, ", "))
			}

			messages, err := catalog.LoadEmbedded()
			if err != nil {
				return err
			}
			missing := 0
			for _, locale := range messages.Locales() {
				for _, key := range messages.MissingKeys(locale) {
					fmt.Fprintf(out, "%s missing message %s\n", locale, key)
					missing++
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d messages missing", missing)
			}
			return nil
		},
	})
	return cmd
}

func healthCmd(cfg Config) *cobra.Command {
	var addr, service string
	var wait bool
	var waitTimeout time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Query the site gRPC health endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if wait {
				if err := waitForServing(cmd, addr, service, waitTimeout); err != nil {
					return err
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.GRPCDial+timeouts.HealthCheck)
			defer cancel()
			response, err := platformgrpc.CheckHealth(ctx, addr, service)
			if err != nil {
				return err
			}
			payload, err := protojson.MarshalOptions{Multiline: true}.Marshal(response)
			if err != nil {
				return fmt.Errorf("encode health response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", cfg.HealthAddr, "site gRPC health address")
	cmd.Flags().StringVar(&service, "service", "gameforge.site", "health service name")
	cmd.Flags().BoolVar(&wait, "wait", false, "block until the service reports SERVING")
	cmd.Flags().DurationVar(&waitTimeout, "timeout", 30*time.Second, "how long --wait blocks")
	return cmd
}

// waitForServing polls addr until service is SERVING, logging progress to stderr.
func waitForServing(cmd *cobra.Command, addr, service string, timeout time.Duration) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("health address is required")
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	conn, err := gogrpc.NewClient(addr, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()
	errOut := cmd.ErrOrStderr()
	return platformgrpc.WaitForHealth(ctx, conn, service, func(format string, args ...any) {
		fmt.Fprintf(errOut, format+"\n", args...)
	})
}
