// Package chat implements the conversation state machine: an input buffer,
// an append-only transcript and a busy flag guarding a single in-flight
// request. It knows nothing about terminals; the TUI and the one-shot
// command both drive it.
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/diogo/gompei/internal/api"
	"github.com/diogo/gompei/internal/models"
)

// State is the conversation's position in the request cycle
type State int

const (
	StateIdle State = iota
	StateAwaiting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaiting:
		return "awaiting"
	default:
		return "unknown"
	}
}

// Option configures a Conversation
type Option func(*Conversation)

// WithLogger sets the debug logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Conversation) {
		c.logger = logger
	}
}

// WithOnChange registers a hook called after every state change, outside
// the conversation lock.
func WithOnChange(fn func()) Option {
	return func(c *Conversation) {
		c.onChange = fn
	}
}

// Conversation owns the state of one chat widget
type Conversation struct {
	id       string
	mu       sync.Mutex
	input    string
	messages []models.Message
	busy     bool
	closed   bool
	logger   zerolog.Logger
	onChange func()
}

// New creates an idle conversation with an empty transcript
func New(opts ...Option) *Conversation {
	c := &Conversation{
		id:     uuid.NewString(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("conversation_id", c.id).Logger()
	return c
}

// ID returns the conversation identifier used in logs
func (c *Conversation) ID() string {
	return c.id
}

// UpdateInput replaces the input buffer
func (c *Conversation) UpdateInput(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.input = text
	c.mu.Unlock()

	c.changed()
}

// Begin starts a submission. It returns false and changes nothing when the
// trimmed input is empty, a request is already outstanding, or the
// conversation is closed. Otherwise it clears the input, appends the user
// message, marks the conversation busy and returns the question to send.
// Every successful Begin must be followed by exactly one Settle.
func (c *Conversation) Begin() (string, bool) {
	c.mu.Lock()
	question := strings.TrimSpace(c.input)
	if question == "" || c.busy || c.closed {
		busy := c.busy
		c.mu.Unlock()
		if busy && question != "" {
			c.logger.Debug().Msg("submit ignored: request in flight")
		}
		return "", false
	}

	c.input = ""
	c.messages = append(c.messages, models.NewUserMessage(question))
	c.busy = true
	c.mu.Unlock()

	c.logger.Debug().Int("question_len", len(question)).Msg("request dispatched")
	c.changed()
	return question, true
}

// Settle records the outcome of the request started by Begin and returns
// the conversation to idle. Any error becomes the fixed server error
// message; an answer without text becomes the no-response message.
// Settlements that arrive after Close are dropped and Settle returns false.
func (c *Conversation) Settle(answer models.Answer, err error) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug().Msg("settlement dropped: conversation closed")
		return false
	}
	if !c.busy {
		c.mu.Unlock()
		c.logger.Warn().Msg("settlement without outstanding request")
		return false
	}

	text := answer.DisplayText()
	if err != nil {
		text = models.ServerErrorText
	}
	c.messages = append(c.messages, models.NewBotMessage(text))
	c.busy = false
	c.mu.Unlock()

	if err != nil {
		c.logger.Debug().Err(err).Msg("request failed")
	} else {
		c.logger.Debug().Bool("found", answer.Found).Msg("request settled")
	}
	c.changed()
	return true
}

// Submit runs a whole request cycle synchronously: Begin, ask, Settle.
// It returns false when Begin rejected the submission. The busy flag is
// cleared on every exit path, including a panicking answerer.
func (c *Conversation) Submit(ctx context.Context, answerer api.Answerer) bool {
	question, ok := c.Begin()
	if !ok {
		return false
	}

	var (
		answer models.Answer
		err    error
	)
	settled := false
	defer func() {
		if !settled {
			c.Settle(models.Answer{}, errPanicked)
		}
	}()

	answer, err = answerer.Ask(ctx, question)
	settled = true
	c.Settle(answer, err)
	return true
}

// Close tears the conversation down. Later input, submissions and
// settlements are ignored.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Closed reports whether Close was called
func (c *Conversation) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Input returns the current input buffer
func (c *Conversation) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Busy reports whether a request is outstanding
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// State returns StateAwaiting while a request is outstanding, else StateIdle
func (c *Conversation) State() State {
	if c.Busy() {
		return StateAwaiting
	}
	return StateIdle
}

// Messages returns a copy of the transcript in display order
func (c *Conversation) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of transcript messages
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// LastBotMessage returns the most recent bot message, if any
func (c *Conversation) LastBotMessage() (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].IsBot() {
			return c.messages[i], true
		}
	}
	return models.Message{}, false
}

// Snapshot returns a consistent copy of the whole state
func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	messages := make([]models.Message, len(c.messages))
	copy(messages, c.messages)
	return Snapshot{Input: c.input, Messages: messages, Busy: c.busy}
}

// Snapshot is a point-in-time copy of a conversation's state
type Snapshot struct {
	Input    string
	Messages []models.Message
	Busy     bool
}

func (c *Conversation) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
