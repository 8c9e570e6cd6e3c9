package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/diogo/gompei/internal/chat"
	"github.com/diogo/gompei/internal/config"
	"github.com/diogo/gompei/internal/models"
	"github.com/diogo/gompei/internal/render"
)

// botLabelStyle and botBubbleStyle match the chat TUI
func botLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)
}

func botBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Foreground(colorText).
		Padding(0, 1).
		MarginBottom(1)
}

// clipboardWrite is replaced in tests
var clipboardWrite = clipboard.WriteAll

func warnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorWarning)
}

func successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSuccess)
}

// runQuery asks a single question through a fresh conversation and prints
// the bot reply. If rawOutput is true, only the reply text is printed.
// Request failures still print the transcript text but make the command fail.
func runQuery(out, errOut io.Writer, question string, rawOutput bool) error {
	cfg, err := loadConfig(errOut)
	if err != nil {
		return err
	}

	logger := openLogger(cfg, errOut)
	defer logger.Close()

	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(errOut, "[verbose] Endpoint: %s\n", cfg.Endpoint)
		if timeout := cfg.RequestTimeout(); timeout > 0 {
			fmt.Fprintf(errOut, "[verbose] Timeout: %s\n", timeout)
		}
	}

	client, err := newAnswerClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	conv := chat.New(chat.WithLogger(logger.Component("chat")))
	defer conv.Close()

	conv.UpdateInput(question)
	q, ok := conv.Begin()
	if !ok {
		return fmt.Errorf("question cannot be empty")
	}

	var spin *spinner
	if !rawOutput {
		spin = newSpinner(errOut, models.ThinkingText)
		spin.start()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()
	answer, askErr := client.Ask(ctx, q)
	requestDuration := time.Since(startTime)
	conv.Settle(answer, askErr)

	if !rawOutput {
		if askErr != nil {
			spin.stopWithError()
			fmt.Fprintln(errOut, formatErrorMessage(askErr, "Request failed"))
		} else {
			spin.stopWithSuccess("Done")
		}
	}

	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(errOut, "[verbose] Request took %s\n", requestDuration.Round(time.Millisecond))
		if askErr == nil && !answer.Found {
			fmt.Fprintln(errOut, "[verbose] Response carried no answer")
		}
	}

	reply, _ := conv.LastBotMessage()
	text := reply.Text

	if askErr != nil {
		printReply(out, text, cfg.Markdown, rawOutput)
		return fmt.Errorf("request failed: %w", askErr)
	}

	if rawOutput {
		if outputFlag != "" {
			return writeOutput(outputFlag, text)
		}
		fmt.Fprintln(out, text)
		return nil
	}

	fmt.Fprintln(errOut)

	if cfg.CopyToClipboard && answer.Found {
		if err := clipboardWrite(text); err != nil {
			fmt.Fprintln(errOut, lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			))
		} else {
			fmt.Fprintln(errOut, successStyle().Render("✓ Copied to clipboard"))
		}
	}

	if outputFlag != "" {
		if err := writeOutput(outputFlag, text); err != nil {
			return err
		}
		fmt.Fprintln(errOut, successStyle().Render(fmt.Sprintf("✓ Answer saved to %s", outputFlag)))
		return nil
	}

	printReply(out, text, cfg.Markdown, false)
	return nil
}

// printReply prints a bot reply, as a labelled bubble unless raw
func printReply(out io.Writer, text string, md config.MarkdownConfig, raw bool) {
	if raw {
		fmt.Fprintln(out, text)
		return
	}

	bubbleWidth := getTerminalWidth() - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	fmt.Fprintln(out, botLabelStyle().Render(models.AppIcon+" Gompei"))

	rendered := render.Answer(text, render.OptionsFromConfig(md).WithWidth(contentWidth))
	fmt.Fprintln(out, botBubbleStyle().Width(bubbleWidth).Render(rendered))
}

func writeOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
