// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"course-search-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		// Map catalog status codes to our API status codes
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Catalog service error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by catalog service")
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("Catalog request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected catalog response", err)
		}
	}

	if errors.IsNetwork(err) || errors.IsMalformedResponse(err) {
		return huma.Error502BadGateway(errors.UserMessage(err))
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
