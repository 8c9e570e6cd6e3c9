// Package api provides the HTTP client for the question-answering service.
package api

// GJSON paths for extracting values from service responses.
const (
	// PathAnswer holds the answer text in a /chat reply
	PathAnswer = "answer"

	// PathHealthMessage holds the status text of the root route
	PathHealthMessage = "message"

	// PathErrorDetail is where FastAPI-style services put error descriptions
	PathErrorDetail = "detail"
)

// maxResponseSize bounds how much of a reply is read into memory
const maxResponseSize = 4 << 20

// maxErrorBodySize bounds the body kept on an APIError for diagnostics
const maxErrorBodySize = 4096
