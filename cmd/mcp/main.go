package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/db"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
	stmcp "github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/mcp"
	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/smartthings"
)

var Flags = []cli.Flag{
	FlagLogLevel,
	FlagLogWriter,
	FlagToken,
	FlagBaseURL,
	FlagTimeout,
	FlagAuditDB,
	FlagSelfTest,
}

func main() {
	var logger zerolog.Logger

	app := cli.App{
		Name:    "smartthings-mcp",
		Version: "1.0.0",
		Usage:   "MCP server exposing Samsung TV control through the SmartThings cloud",
		Flags:   Flags,
		Before: func(ctx *cli.Context) error {
			// Logging must go to stderr — stdout is the MCP transport
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
				Str("service", "smartthings-mcp").
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
			}

			gw := gateway.New(client, opts...)

			if ctx.Bool(FlagSelfTest.Name) {
				return runSelfTest(ctx.Context, gw, ctx.String(FlagBaseURL.Name))
			}

			// Probe the account once so a bad token fails loudly at
			// startup instead of on the first tool call.
			probeCtx, cancel := context.WithTimeout(ctx.Context, ctx.Duration(FlagTimeout.Name))
			devices, err := gw.ListDevices(probeCtx)
			cancel()
			if err != nil {
				return err
			}
			logger.Info().Int("devices", len(devices)).Msg("connected to SmartThings")

			logger.Info().Msg("starting MCP server on stdio")
			return stmcp.NewServer(gw).ServeStdio()
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Err(err).Msg("service terminated")
		os.Exit(1)
	}
}
