package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/api/handlers"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/db"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

var Flags = []cli.Flag{
	FlagLogLevel,
	FlagLogWriter,
	FlagToken,
	FlagBaseURL,
	FlagTimeout,
	FlagAuditDB,
	FlagListen,
}

func main() {
	var logger zerolog.Logger

	app := cli.App{
		Name:    "smartthings-api",
		Version: "1.0.0",
		Usage:   "REST API for controlling Samsung TVs through the SmartThings cloud",
		Flags:   Flags,
		Before: func(ctx *cli.Context) error {
			var logWriter io.Writer
			if ctx.String(FlagLogWriter.Name) == "console" {
				logWriter = zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339Nano,
				}
			} else if ctx.String(FlagLogWriter.Name) == "json" {
				logWriter = os.Stderr
			}

			logger = zerolog.New(logWriter).With().Timestamp().
				Str("service", "smartthings-api").
				Str("module", "main").
				Logger()

			level, err := zerolog.ParseLevel(ctx.String(FlagLogLevel.Name))
			if err != nil {
				return err
			}

			zerolog.SetGlobalLevel(level)

			return nil
		},
		Action: func(ctx *cli.Context) error {
			client, err := smartthings.NewClient(smartthings.Config{
				Token:   ctx.String(FlagToken.Name),
				BaseURL: ctx.String(FlagBaseURL.Name),
				Timeout: ctx.Duration(FlagTimeout.Name),
				Log:     logger.With().Str("module", "smartthings").Logger(),
			})
			if err != nil {
				return err
			}

			opts := []gateway.Option{
				gateway.WithLogger(logger.With().Str("module", "gateway").Logger()),
			}

			var auditReader handlers.AuditReader
			if path := ctx.String(FlagAuditDB.Name); path != "" {
				database, err := db.Open(path)
				if err != nil {
					return err
				}
				defer func() {
					if err := database.Close(); err != nil {
						logger.Error().Err(err).Msg("failed to close audit database")
					}
				}()

				if err := database.Migrate(ctx.Context); err != nil {
					return err
				}
				logger.Info().Str("path", database.Path()).Msg("command auditing enabled")
				opts = append(opts, gateway.WithAuditor(database))
				auditReader = database
			}

			gw := gateway.New(client, opts...)
			router := api.NewRouter(gw, auditReader)

			go func() {
				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan

				logger.Info().Msg("shutting down")
				os.Exit(0)
			}()

			addr := ctx.String(FlagListen.Name)
			logger.Info().Str("address", addr).Msg("starting API server")

			return router.Run(addr)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Err(err).Msg("service terminated")
		os.Exit(1)
	}
}
