package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("ask", "http://localhost:8000/chat", cause)

	expected := "network error during ask at http://localhost:8000/chat: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, cause) {
		t.Error("Expected NetworkError to unwrap to its cause")
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Error("Expected NetworkError to match ErrRequestFailed")
	}
	if !IsNetworkError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("Expected IsNetworkError to see through wrapping")
	}
}

func TestNetworkErrorWithoutEndpoint(t *testing.T) {
	err := NewNetworkError("ping", "", errors.New("boom"))
	if err.Error() != "network error during ping: boom" {
		t.Errorf("Error() = %s", err.Error())
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(500, "http://localhost:8000/chat", "ask failed")

	expected := "API error [500] at http://localhost:8000/chat: ask failed"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Error("Expected APIError to match ErrRequestFailed")
	}
	if GetHTTPStatus(err) != 500 {
		t.Errorf("GetHTTPStatus() = %d, want 500", GetHTTPStatus(err))
	}
}

func TestAPIErrorWithoutStatus(t *testing.T) {
	err := NewAPIError(0, "endpoint", "message")
	if err.Error() != "API error at endpoint: message" {
		t.Errorf("Error() = %s", err.Error())
	}
}

func TestAPIErrorWithBody(t *testing.T) {
	err := NewAPIErrorWithBody(422, "endpoint", "ask failed", `{"detail":"bad"}`)
	if GetResponseBody(err) != `{"detail":"bad"}` {
		t.Errorf("GetResponseBody() = %q", GetResponseBody(err))
	}
	if GetEndpoint(err) != "endpoint" {
		t.Errorf("GetEndpoint() = %q", GetEndpoint(err))
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("response is not valid JSON", "answer")

	if err.Error() != "parse error: response is not valid JSON" {
		t.Errorf("Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("Expected ParseError to match ErrInvalidResponse")
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Error("Expected ParseError to match ErrRequestFailed")
	}
	if !IsParseError(err) {
		t.Error("Expected IsParseError to be true")
	}
	if IsNetworkError(err) {
		t.Error("ParseError should not be a network error")
	}
}

func TestIsRequestFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("other"), false},
		{"network", NewNetworkError("ask", "", errors.New("x")), true},
		{"api", NewAPIError(502, "", "bad gateway"), true},
		{"parse", NewParseError("bad json", ""), true},
		{"wrapped", fmt.Errorf("ask: %w", NewParseError("bad json", "")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRequestFailure(tt.err); got != tt.want {
				t.Errorf("IsRequestFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHelpersOnUnrelatedErrors(t *testing.T) {
	err := errors.New("unrelated")
	if GetHTTPStatus(err) != 0 {
		t.Error("Expected status 0")
	}
	if GetEndpoint(err) != "" {
		t.Error("Expected empty endpoint")
	}
	if GetResponseBody(err) != "" {
		t.Error("Expected empty body")
	}
}
