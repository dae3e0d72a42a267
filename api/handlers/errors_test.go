package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"course-search-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "session", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "session not found: abc",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "category", Message: "unsupported value 'x'"},
			expectedStatus: 400,
			expectedInMsg:  "unsupported value 'x'",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedInMsg:  "Catalog service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by catalog service",
		},
		{
			name:           "ExternalAPIError with 404 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 404, Message: "not found"},
			expectedStatus: 400,
			expectedInMsg:  "Catalog request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected catalog response",
		},
		{
			name:           "wrapped ExternalAPIError is unwrapped",
			input:          fmt.Errorf("list: %w", &errors.ExternalAPIError{StatusCode: 502}),
			expectedStatus: 503,
			expectedInMsg:  "Catalog service error",
		},
		{
			name:           "NetworkError returns 502",
			input:          &errors.NetworkError{Op: "list courses", Err: fmt.Errorf("connection refused")},
			expectedStatus: 502,
			expectedInMsg:  "Failed to fetch results: connection refused",
		},
		{
			name:           "MalformedResponseError returns 502",
			input:          &errors.MalformedResponseError{Reason: "missing courses"},
			expectedStatus: 502,
			expectedInMsg:  errors.MsgInvalidResponse,
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "section", ID: "x"}),
			expectedStatus: 404,
			expectedInMsg:  "section not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
