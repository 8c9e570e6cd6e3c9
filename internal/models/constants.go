// Package models contains data types and constants for the gompei chat client.
package models

// Default answering service location
const (
	DefaultEndpoint = "http://localhost:8000/chat"
	ChatPath        = "/chat"
)

// Fixed transcript texts
const (
	// NoResponseText is shown when the service replied without a usable answer
	NoResponseText = "No response found."

	// ServerErrorText is shown for every failed request, whatever the cause
	ServerErrorText = "Error contacting server ❌"

	// ThinkingText is the transient bubble shown while a request is in flight
	ThinkingText = "Thinking…"
)

// UI texts
const (
	AppTitle         = "Gompei Chatbot"
	AppIcon          = "🐐"
	InputPlaceholder = "Ask something about WPI…"
)

// DefaultHeaders returns the headers sent with every question
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
