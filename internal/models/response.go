package models

// ChatRequest is the JSON body posted to the answering service
type ChatRequest struct {
	Question string `json:"question"`
}

// Answer is the outcome of a request that reached the service and returned
// a parseable body. Found is false when the body carried no usable answer.
type Answer struct {
	Text  string
	Found bool
}

// NewAnswer creates an Answer from the extracted text. Empty text counts as
// no answer.
func NewAnswer(text string) Answer {
	return Answer{Text: text, Found: text != ""}
}

// DisplayText returns the text that should be appended to the transcript
func (a Answer) DisplayText() string {
	if !a.Found {
		return NoResponseText
	}
	return a.Text
}

// HealthStatus is the reply of the service's root route
type HealthStatus struct {
	Message    string
	StatusCode int
}
