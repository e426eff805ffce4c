package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the thunderbird-mcp application
var rootCmd = &cobra.Command{
	Use:   "thunderbird-mcp",
	Short: "MCP server bridging AI assistants to Thunderbird",
	Long: `thunderbird-mcp exposes a running Thunderbird instance to AI assistants
through the Model Context Protocol.

It talks to the Thunderbird MCP extension's local HTTP endpoint and
provides mail, compose, filter, contact and calendar tools over stdio
or streamable HTTP.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "thunderbird-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
