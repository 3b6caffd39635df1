package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/entrhq/raindrop-mcp/pkg/config"
)

const version = "0.1.0"

// Diagnostics go to stderr only; stdout belongs to the MCP protocol.
var (
	errText  = color.New(color.FgRed)
	infoText = color.New(color.FgCyan)
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "raindrop-mcp",
	Short: "MCP server for the Raindrop.io bookmarking service",
	Long: dedent.Dedent(`
		raindrop-mcp exposes the Raindrop.io REST API as Model Context Protocol
		tools: an AI assistant host can list, create, update and delete
		collections, raindrops (bookmarks) and tags through it.

		Every tool call issues a single authenticated request against
		api.raindrop.io and relays the result; the server keeps no local copy
		of any bookmark data.

		The API token is read from the RAINDROP_TOKEN environment variable or
		from the token field of the config file.`),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	defaultPath, err := config.DefaultPath()
	if err != nil {
		errText.Fprintln(os.Stderr, "Error resolving config path:", err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultPath, "path to the config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errText.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
