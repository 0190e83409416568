package studioctl

import (
	"fmt"
	"text/tabwriter"
	"time"

	sitesqlite "github.com/louisbranch/gameforge/internal/services/site/storage/sqlite"
	"github.com/spf13/cobra"
)

func inboxCmd(cfg Config) *cobra.Command {
	var dbPath string
	var limit int
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List contact messages and donation pledges",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "SQLite inbox database path")
	cmd.PersistentFlags().IntVar(&limit, "limit", 20, "maximum rows to list")

	cmd.AddCommand(&cobra.Command{
		Use:   "contacts",
		Short: "List recent contact messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := sitesqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			messages, err := store.ListContactMessages(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tNAME\tEMAIL\tSUBJECT\tLOCALE")
			for _, m := range messages {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.CreatedAt.Format(time.RFC3339), m.Name, m.Email, m.Subject, m.Locale)
			}
			return w.Flush()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "donations",
		Short: "List recent donation pledges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := sitesqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			pledges, err := store.ListDonationPledges(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tNAME\tEMAIL\tAMOUNT\tMETHOD\tLOCALE")
			for _, p := range pledges {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d.%02d\t%s\t%s\n", p.ID, p.CreatedAt.Format(time.RFC3339), p.Name, p.Email, p.AmountCents/100, p.AmountCents%100, p.PaymentMethod, p.Locale)
			}
			return w.Flush()
		},
	})
	return cmd
}
