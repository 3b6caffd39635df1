package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lithammer/dedent"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/entrhq/raindrop-mcp/pkg/config"
	"github.com/entrhq/raindrop-mcp/pkg/logging"
	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
	"github.com/entrhq/raindrop-mcp/pkg/tools"
)

const serverName = "Raindrop.io"

const serverInstructions = `This server manages Raindrop.io bookmarks.
Raindrops are bookmarks, organized into collections and labeled with tags.
Collection IDs 0 (all), -1 (unsorted) and -99 (trash) are reserved and can
be used wherever a collection ID filters raindrops.`

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio",
	Long: dedent.Dedent(`
		Starts the MCP server on stdin/stdout and blocks until the host closes
		the stream or the process receives SIGINT or SIGTERM.

		Diagnostics go to a session log file (see RAINDROP_MCP_LOG_DIR) or to
		stderr, never to stdout: stdout carries the protocol.`),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logErr := logging.NewLogger("server")
	if logErr != nil {
		infoText.Fprintln(os.Stderr, "File logging unavailable, using stderr:", logErr)
	}
	defer logger.Close()

	apiLogger, _ := logging.NewLogger("raindrop")
	defer apiLogger.Close()

	opts := []raindrop.Option{
		raindrop.WithTimeout(cfg.Timeout()),
		raindrop.WithLogger(apiLogger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, raindrop.WithBaseURL(cfg.BaseURL))
		logger.Infof("using API endpoint %s", cfg.BaseURL)
	}
	client := raindrop.NewClient(cfg.Token, opts...)

	srv := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)
	tools.NewRegistry(client).RegisterAll(srv)

	logger.Infof("raindrop-mcp %s serving MCP over stdio, session %s", version, logger.SessionID())
	if path := logger.LogPath(); path != "" {
		infoText.Fprintf(os.Stderr, "raindrop-mcp %s ready, logging to %s\n", version, path)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Infof("shutdown signal received")
		cancel()
	}()

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(log.New(logger.Writer(), "", log.LstdFlags))

	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("stdio server terminated: %v", err)
		return err
	}

	logger.Infof("shutdown complete")
	return nil
}
