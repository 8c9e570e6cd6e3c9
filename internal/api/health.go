package api

import (
	"context"
	"fmt"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/gompei/internal/models"
)

// Ping checks the service root route, which answers
// {"message": "Backend is running"} when the service is up.
func (c *Client) Ping(ctx context.Context) (*models.HealthStatus, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rootURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, "ping")
	if err != nil {
		c.logger.Debug().Err(err).Msg("ping failed")
		return nil, err
	}

	status, err := parseHealth(body)
	if err != nil {
		return nil, err
	}
	status.StatusCode = http.StatusOK
	return status, nil
}
