package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/gompei/internal/render"
	"github.com/diogo/gompei/internal/tui"
)

// startupPingTimeout bounds the health check made before the TUI opens
const startupPingTimeout = 3 * time.Second

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start the Gompei Chatbot widget in the terminal.

Type a question and press Enter (or Tab to the Send button). While an answer
is pending the widget shows "Thinking…" and further submissions are ignored.
Press Esc or Ctrl+C to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.ErrOrStderr())
	},
}

func runChat(errOut io.Writer) error {
	cfg, err := loadConfig(errOut)
	if err != nil {
		return err
	}

	logger := openLogger(cfg, errOut)
	defer logger.Close()

	client, err := newAnswerClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	// The widget works without a healthy service; a failed check is only a warning
	spin := newSpinner(errOut, "Checking answering service")
	spin.start()

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	status, pingErr := client.Ping(ctx)
	cancel()

	opts := []tui.ModelOption{
		tui.WithEndpoint(client.Endpoint()),
		tui.WithLogger(logger.Component("tui")),
		tui.WithRenderOptions(render.OptionsFromConfig(cfg.Markdown)),
	}

	if pingErr != nil {
		spin.stopWithWarning("Answering service unreachable; questions will fail until it is up")
		opts = append(opts, tui.WithServiceStatus("offline", false))
	} else {
		spin.stopWithSuccess("Connected")
		msg := ""
		if status != nil {
			msg = status.Message
		}
		if msg == "" {
			msg = "online"
		}
		opts = append(opts, tui.WithServiceStatus(msg, true))
	}

	return deps.TUI.RunChat(client, opts...)
}
