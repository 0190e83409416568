package studioctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/gameforge/internal/platform/timeouts"
	"github.com/louisbranch/gameforge/internal/services/studio/optimizer"
	"github.com/louisbranch/gameforge/internal/services/studio/poster"
	"github.com/louisbranch/gameforge/internal/services/studio/scaffold"
	"github.com/spf13/cobra"
)

func posterCmd() *cobra.Command {
	var prompt, out string
	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Render a game poster PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt = strings.TrimSpace(prompt)
			if out == "" {
				out = poster.Filename(prompt)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Render)
			defer cancel()
			img, err := poster.Render(ctx, prompt)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := poster.EncodePNG(f, img); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "", "game description")
	cmd.Flags().StringVar(&out, "out", "", "output file (default derived from prompt)")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func optimizeCmd() *cobra.Command {
	var mode, in string
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Apply the optimizer rules to game code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := optimizer.ParseMode(mode)
			if err != nil {
				return err
			}
			code, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			result, err := optimizer.Run(cmd.Context(), parsed, code)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Code)
			for _, note := range result.Notes {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %s\n", note)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(optimizer.Mode2D), "rule set: 2d or 3d")
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	return cmd
}

func scaffoldCmd() *cobra.Command {
	var kind, prompt string
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Print starter code for a game idea",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := scaffold.ParseKind(kind)
			if err != nil {
				return err
			}
			out, err := scaffold.GenerateContext(cmd.Context(), parsed, prompt)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out.Code)
			return err
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(scaffold.Kind2D), "scaffold kind: 2d or 3d")
	cmd.Flags().StringVar(&prompt, "prompt", "", "game description")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
