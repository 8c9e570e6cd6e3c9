// Package commands provides CLI commands for gompei.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/gompei/internal/api"
	"github.com/diogo/gompei/internal/config"
	"github.com/diogo/gompei/internal/logging"
	"github.com/diogo/gompei/internal/render"
	"github.com/diogo/gompei/internal/tui"
)

var (
	// Global flags
	endpointFlag string
	outputFlag   string
	fileFlag     string
	rawFlag      bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gompei [question]",
	Short: "Terminal chat client for the Gompei question-answering service",
	Long: `gompei is a terminal client for the Gompei Chatbot. It sends questions to
an answering service over HTTP and shows the answers as a chat transcript.

Examples:
  gompei chat                                  Start interactive chat
  gompei "What is WPI?"                        Ask a single question
  gompei -f question.txt                       Read the question from a file
  echo "Where is WPI?" | gompei                Read the question from stdin
  gompei "What is WPI?" -o answer.md           Save the answer to a file
  gompei -e http://gompei.example:8000/chat    Use another service
  gompei ping                                  Check that the service is up`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "gompei %s (built %s)\n", Version, BuildTime)
			return nil
		}

		raw := rawFlag || !isStdoutTTY()

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(cmd.OutOrStdout(), cmd.ErrOrStderr(), string(data), raw)
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := stat != nil && (stat.Mode()&os.ModeCharDevice) == 0
		if hasStdin && len(args) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(cmd.OutOrStdout(), cmd.ErrOrStderr(), string(data), raw)
		}

		if len(args) > 0 {
			return runQuery(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], raw)
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "",
		"Answering service chat URL (overrides config and "+config.EnvEndpoint+")")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save answer to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print only the answer text")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the user config and applies the --endpoint flag. A broken
// config file is reported on errOut and the defaults are used instead.
func loadConfig(errOut io.Writer) (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		warn := fmt.Sprintf("⚠ %v (using defaults)", err)
		fmt.Fprintln(errOut, warnStyle().Render(warn))
	}

	applyTheme(cfg.TUITheme, errOut)

	if endpointFlag != "" {
		if err := config.ValidateEndpoint(endpointFlag); err != nil {
			return cfg, err
		}
		cfg.Endpoint = endpointFlag
	}

	return cfg, nil
}

// applyTheme activates the named chat theme for the TUI and the CLI output
func applyTheme(name string, errOut io.Writer) {
	if name != "" && !render.SetTUITheme(name) {
		fmt.Fprintln(errOut, warnStyle().Render(fmt.Sprintf("⚠ Unknown theme %q, using default", name)))
	}
	tui.UpdateTheme()
	updateColors()
}

// newAnswerClient returns the injected client, or builds one from cfg
func newAnswerClient(cfg config.Config, logger *logging.Logger) (api.AnswerClientInterface, error) {
	if deps.Client != nil {
		return deps.Client, nil
	}

	client, err := api.NewClient(
		api.WithEndpoint(cfg.Endpoint),
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithLogger(logger.Component("api")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// openLogger opens the debug log; failures only disable logging
func openLogger(cfg config.Config, errOut io.Writer) *logging.Logger {
	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintln(errOut, warnStyle().Render(fmt.Sprintf("⚠ Logging disabled: %v", err)))
	}
	return logger
}
