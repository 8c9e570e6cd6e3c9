package commands

import (
	"github.com/diogo/gompei/internal/api"
	"github.com/diogo/gompei/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(answerer api.Answerer, opts ...tui.ModelOption) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Client, when set, is used instead of a client built from config.
	Client api.AnswerClientInterface

	// TUI is the terminal user interface.
	TUI TUIInterface
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(answerer api.Answerer, opts ...tui.ModelOption) error {
	return tui.RunChat(answerer, opts...)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI: &DefaultTUI{},
	}
}

// deps is the dependency set used by the command handlers
var deps = NewDependencies()
