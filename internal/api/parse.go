package api

import (
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/gompei/internal/errors"
	"github.com/diogo/gompei/internal/models"
)

// parseAnswer extracts the answer from a /chat reply body.
// Any JSON value is tolerated except null; only a non-empty string at
// PathAnswer counts as an answer.
func parseAnswer(body []byte) (models.Answer, error) {
	if !gjson.ValidBytes(body) {
		return models.Answer{}, apierrors.NewParseError("response is not valid JSON", "")
	}

	root := gjson.ParseBytes(body)
	if root.Type == gjson.Null {
		return models.Answer{}, apierrors.NewParseError("response is null", "")
	}

	result := root.Get(PathAnswer)
	if result.Type != gjson.String {
		return models.Answer{}, nil
	}
	return models.NewAnswer(result.Str), nil
}

// parseHealth extracts the status message from a root route reply
func parseHealth(body []byte) (*models.HealthStatus, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON", "")
	}
	return &models.HealthStatus{
		Message: gjson.GetBytes(body, PathHealthMessage).String(),
	}, nil
}

// errorDetail returns the "detail" field of an error body, if any
func errorDetail(body string) string {
	if !gjson.Valid(body) {
		return ""
	}
	return gjson.Get(body, PathErrorDetail).String()
}
