package api

import (
	"context"
	"sync"

	"github.com/diogo/gompei/internal/models"
)

// MockAnswerer is a mock implementation of AnswerClientInterface for testing
type MockAnswerer struct {
	// Mock return values
	AnswerVal   models.Answer
	AnswerErr   error
	PingVal     *models.HealthStatus
	PingErr     error
	EndpointVal string

	// Release, when non-nil, holds every Ask until it is closed or
	// receives a value. Started receives one value per Ask that begins.
	Release chan struct{}
	Started chan struct{}

	mu           sync.Mutex
	calls        int
	lastQuestion string
	questions    []string
	closed       bool
}

// NewMockAnswerer returns a mock that answers every question with text
func NewMockAnswerer(text string) *MockAnswerer {
	return &MockAnswerer{AnswerVal: models.NewAnswer(text)}
}

// NewMockAnswererWithError returns a mock that fails every question with err
func NewMockAnswererWithError(err error) *MockAnswerer {
	return &MockAnswerer{AnswerErr: err}
}

func (m *MockAnswerer) Ask(ctx context.Context, question string) (models.Answer, error) {
	m.mu.Lock()
	m.calls++
	m.lastQuestion = question
	m.questions = append(m.questions, question)
	m.mu.Unlock()

	if m.Started != nil {
		m.Started <- struct{}{}
	}

	if m.Release != nil {
		select {
		case <-m.Release:
		case <-ctx.Done():
			return models.Answer{}, ctx.Err()
		}
	}

	return m.AnswerVal, m.AnswerErr
}

func (m *MockAnswerer) Ping(ctx context.Context) (*models.HealthStatus, error) {
	return m.PingVal, m.PingErr
}

func (m *MockAnswerer) Endpoint() string {
	if m.EndpointVal == "" {
		return models.DefaultEndpoint
	}
	return m.EndpointVal
}

func (m *MockAnswerer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *MockAnswerer) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Calls returns how many times Ask was called
func (m *MockAnswerer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastQuestion returns the question passed to the most recent Ask
func (m *MockAnswerer) LastQuestion() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuestion
}

// Questions returns every question passed to Ask, in order
func (m *MockAnswerer) Questions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.questions))
	copy(out, m.questions)
	return out
}
