package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var pingTimeoutFlag time.Duration

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the answering service is running",
	Long: `Send a GET request to the root of the answering service and report its
status. The chat route itself is not exercised.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPing(cmd.OutOrStdout(), cmd.ErrOrStderr(), pingTimeoutFlag)
	},
}

func init() {
	pingCmd.Flags().DurationVar(&pingTimeoutFlag, "timeout", 5*time.Second, "Give up after this long")
}

func runPing(out, errOut io.Writer, timeout time.Duration) error {
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

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	status, err := client.Ping(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Fprintln(errOut, formatErrorMessage(err, "Service unreachable"))
		return fmt.Errorf("ping failed: %w", err)
	}

	msg := "OK"
	if status != nil && status.Message != "" {
		msg = status.Message
	}
	fmt.Fprintf(out, "%s %s (%s, %s)\n", successStyle().Render("✓"), msg, client.Endpoint(), elapsed)
	return nil
}
