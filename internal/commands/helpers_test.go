package commands

import (
	"testing"

	"github.com/diogo/gompei/internal/api"
	"github.com/diogo/gompei/internal/config"
	"github.com/diogo/gompei/internal/tui"
)

// fakeTUI records RunChat calls instead of opening the terminal UI
type fakeTUI struct {
	calls    int
	answerer api.Answerer
	opts     []tui.ModelOption
	err      error
}

func (f *fakeTUI) RunChat(answerer api.Answerer, opts ...tui.ModelOption) error {
	f.calls++
	f.answerer = answerer
	f.opts = opts
	return f.err
}

// setupTest isolates HOME, the environment overrides and the package flags,
// and injects client in place of a real one.
func setupTest(t *testing.T, client api.AnswerClientInterface) *fakeTUI {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvTheme, "")
	t.Setenv("GLAMOUR_STYLE", "notty")

	oldDeps := deps
	oldClipboard := clipboardWrite
	fake := &fakeTUI{}
	deps = &Dependencies{Client: client, TUI: fake}

	endpointFlag, outputFlag, fileFlag, rawFlag = "", "", "", false

	t.Cleanup(func() {
		deps = oldDeps
		clipboardWrite = oldClipboard
		endpointFlag, outputFlag, fileFlag, rawFlag = "", "", "", false
	})
	return fake
}
