package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/crosscheck/internal/server"
)

var (
	serveAddr      string
	serveProvider  string
	serveModel     string
	serveNarrative bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve starts an HTTP server exposing the analysis pipeline:

  GET  /         service status
  POST /analyze  run a full analysis for {"input": "<url or text>"}

Example:
  crosscheck serve
  crosscheck serve --addr :9000 --narrative ollama`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8000)")
	serveCmd.Flags().BoolVar(&serveNarrative, "narrative", false, "enable generative narrative verdict")
	serveCmd.Flags().StringVar(&serveProvider, "narrative-provider", "openai", "narrative provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&serveModel, "narrative-model", "", "narrative model name (provider default if empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveNarrative {
		if err := configureNarrative(cfg, serveProvider, serveModel); err != nil {
			return err
		}
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	analyzer, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("starting server", "addr", cfg.Server.Addr)
	return server.New(cfg.Server, analyzer, log).Run()
}
