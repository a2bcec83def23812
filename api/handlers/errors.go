// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"credcheck-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsInvalidInput(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	var fetchErr *errors.FetchError
	if stderrors.As(err, &fetchErr) {
		// Map the upstream failure; 4xx from the site means the URL is
		// the problem, everything else is a gateway-style failure
		switch {
		case fetchErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by upstream site")
		case fetchErr.StatusCode >= 400 && fetchErr.StatusCode < 500:
			return huma.Error422UnprocessableEntity("Upstream site rejected the request", err)
		default:
			return huma.Error502BadGateway("Could not fetch the article", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
