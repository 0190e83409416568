// Package site parses site flags and launches the web server.
package site

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/gameforge/internal/platform/branding"
	entrypoint "github.com/louisbranch/gameforge/internal/platform/cmd"
	siteserver "github.com/louisbranch/gameforge/internal/services/site"
	"github.com/louisbranch/gameforge/internal/services/site/platform/requestmeta"
	sitesqlite "github.com/louisbranch/gameforge/internal/services/site/storage/sqlite"
)

// EnvPrefix prefixes every site environment variable.
const EnvPrefix = "GAMEFORGE_SITE_"

// Config holds site command configuration.
type Config struct {
	HTTPAddr            string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	GRPCAddr            string `env:"GRPC_ADDR"`
	DBPath              string `env:"DB_PATH" envDefault:"data/site.db"`
	Name                string `env:"NAME"`
	Logo                string `env:"LOGO"`
	Slogan              string `env:"SLOGAN"`
	Favicon             string `env:"FAVICON"`
	TrustForwardedProto bool   `env:"TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, EnvPrefix, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address (empty disables)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite inbox database path")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "Website name")
	fs.StringVar(&cfg.Logo, "logo", cfg.Logo, "Website logo URL")
	fs.StringVar(&cfg.Slogan, "slogan", cfg.Slogan, "Website slogan")
	fs.StringVar(&cfg.Favicon, "favicon", cfg.Favicon, "Website favicon URL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto and X-Forwarded-Host")
}

// Brand returns the website info with configured overrides applied.
func (c Config) Brand() branding.Info {
	return branding.Default().WithOverrides(c.Name, c.Logo, c.Slogan, c.Favicon)
}

// Run opens the inbox store and serves the site until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		store, err := sitesqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open inbox store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close inbox store: %v", err)
			}
		}()

		server, err := siteserver.NewServer(ctx, siteserver.Config{
			HTTPAddr:    cfg.HTTPAddr,
			GRPCAddr:    cfg.GRPCAddr,
			Brand:       cfg.Brand(),
			Inbox:       store,
			RequestMeta: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		})
		if err != nil {
			return err
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}
