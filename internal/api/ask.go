package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"

	apierrors "github.com/diogo/gompei/internal/errors"
	"github.com/diogo/gompei/internal/models"
)

// Ask posts question to the chat endpoint and extracts the answer.
//
// A reply that parses as JSON but carries no usable answer is not an
// error: it yields an Answer with Found == false. Transport failures,
// non-2xx statuses and unparseable bodies are returned as errors that
// match apierrors.ErrRequestFailed.
func (c *Client) Ask(ctx context.Context, question string) (models.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Answer{}, apierrors.ErrEmptyQuestion
	}
	if c.IsClosed() {
		return models.Answer{}, apierrors.ErrClientClosed
	}

	payload, err := json.Marshal(models.ChatRequest{Question: question})
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to build payload: %w", err)
	}

	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.Debug().Str("endpoint", c.endpoint).Int("question_len", len(question)).Msg("asking")

	body, err := c.do(req, "ask")
	if err != nil {
		c.logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("ask failed")
		return models.Answer{}, err
	}

	answer, err := parseAnswer(body)
	if err != nil {
		c.logger.Debug().Err(err).Int("body_len", len(body)).Msg("unparseable reply")
		return models.Answer{}, err
	}

	c.logger.Debug().
		Bool("found", answer.Found).
		Int("answer_len", len(answer.Text)).
		Dur("elapsed", time.Since(start)).
		Msg("answered")

	return answer, nil
}
