package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"portfolio-api/config"
	"portfolio-api/database"
	routes "portfolio-api/internal/app/http"
	"portfolio-api/internal/domain/access"
	"portfolio-api/internal/domain/catalog"
	"portfolio-api/internal/domain/identity"
	"portfolio-api/internal/domain/origin"
	"portfolio-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio-api",
		Short:        "Likes and comments backend for the portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the likes and comments tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				config.LoadDatabaseEnv()
				database.InitDB()
				return nil
			},
		},
		&cobra.Command{
			Use:   "artworks",
			Short: "Print the artwork catalog, newest first",
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, a := range catalog.Default().Sorted() {
					fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s  %s\n", a.ID, a.Date.Format("2006-01-02"), a.Title)
				}
				return nil
			},
		},
	)
	return root
}

func serve() error {
	config.LoadEnv()
	database.InitDB()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	issuer, err := access.NewIssuer(
		config.ADMIN_PASSWORD,
		config.JWT_SECRET,
		config.ADMIN_TOKEN_TTL,
		config.ADMIN_ACCEPT_LEGACY_TOKENS,
	)
	if err != nil {
		log.Fatal("❌ Admin credentials:", err)
	}
	if config.ADMIN_ACCEPT_LEGACY_TOKENS {
		logger.Warn("legacy admin tokens accepted; they embed the admin secret")
	}

	var m *metrics.Metrics
	if config.METRICS_ENABLED {
		m = metrics.New()
	}

	r := routes.NewRouter(routes.Deps{
		DB:       database.DB,
		Issuer:   issuer,
		Catalog:  catalog.Default(),
		Identity: identity.NewResolver(config.IDENTITY_HEADERS),
		CORS: origin.Policy{
			Origins: config.CORS_ORIGINS,
			Suffix:  config.CORS_ORIGIN_SUFFIX,
			Strict:  config.CORS_STRICT,
		},
		RequireKnownArtwork: config.REQUIRE_KNOWN_ARTWORK,
		Metrics:             m,
		Log:                 logger,
	})

	logger.Info("listening", slog.String("port", config.PORT), slog.String("mode", gin.Mode()))
	return r.Run(":" + config.PORT)
}
