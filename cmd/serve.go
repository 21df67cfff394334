package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/edubot/internal/db"
	"github.com/ziadkadry99/edubot/internal/feedback"
	"github.com/ziadkadry99/edubot/internal/llm"
	"github.com/ziadkadry99/edubot/internal/logger"
	"github.com/ziadkadry99/edubot/internal/relay"
	"github.com/ziadkadry99/edubot/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat relay HTTP server",
	Long:  `Starts the edubot HTTP server: the streaming /chat relay, question analysis, status endpoints, and feedback collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		log := setupLogger(cfg)

		if cfg.Upstream.APIKey == "" {
			log.Warn("no upstream API key configured; every chat will receive the fallback reply", "env", "OPENROUTER_API_KEY")
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		gwCfg := gatewayConfigFrom(cfg)
		gateway := llm.NewGateway(gwCfg, nil)
		rl := relay.New(gateway, gwCfg, log)

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAll,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			APIKeySet:      cfg.Upstream.APIKey != "",
			AdminKeySet:    cfg.AdminKey != "",
		}, database, llm.NewOpenRouterProvider(gwCfg, gwCfg.Primary), server.Models{
			Primary:   gwCfg.Primary,
			Secondary: gwCfg.Secondary,
		}, log)

		relay.RegisterRoutes(srv.Router(), srv.StreamRouter(), rl)
		feedback.RegisterRoutes(srv.Router(), feedback.NewStore(database), cfg.AdminKey, log)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown", logger.Err(err))
			}
		}()

		log.Info("edubot starting",
			"version", Version,
			"port", cfg.Server.Port,
			"primary", gwCfg.Primary.ID,
			"fallback", gwCfg.Secondary.ID,
			"database", database.Path(),
		)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
