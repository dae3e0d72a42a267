// ABOUTME: Catalog client speaks the paginated course-listing endpoint
// ABOUTME: Builds request parameters, unwraps either response envelope and classifies failures

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"course-search-api/core/domain"
	coreerrors "course-search-api/core/errors"
	"course-search-api/core/interfaces"
	"course-search-api/pkg/utils/parse"
)

const apiName = "catalog"

// DefaultStatus restricts listings to courses visible to learners
const DefaultStatus = "Published"

// Client lists courses over an injected HTTP client
type Client struct {
	baseURL string
	deps    interfaces.Dependencies
}

// NewClient creates a catalog client for the listing endpoint at baseURL
func NewClient(baseURL string, deps interfaces.Dependencies) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		deps:    deps,
	}
}

// ListCourses fetches one page of courses
func (c *Client) ListCourses(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	if c.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	query, err := BuildQuery(req)
	if err != nil {
		return nil, err
	}
	endpoint := c.baseURL + "?" + query.Encode()

	resp, err := c.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return nil, &coreerrors.NetworkError{Op: "list courses", Err: err}
	}
	defer resp.Body().Close()

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.NetworkError{Op: "read response", Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    backendMessage(bodyBytes),
			API:        apiName,
		}
	}

	return DecodeResponse(bodyBytes)
}

// BuildQuery encodes a listing request. The nested filters object travels
// as a JSON document in the "filters" parameter.
func BuildQuery(req domain.ListRequest) (url.Values, error) {
	if req.Page < 1 {
		return nil, &coreerrors.ValidationError{Field: "page", Message: "must be at least 1"}
	}
	if req.Limit < 1 {
		return nil, &coreerrors.ValidationError{Field: "limit", Message: "must be at least 1"}
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("limit", strconv.Itoa(req.Limit))
	if req.Search != "" {
		q.Set("search", req.Search)
	}
	if len(req.Categories) > 0 {
		q.Set("course_category", strings.Join(req.Categories, ","))
	}
	if req.Status != "" {
		q.Set("status", req.Status)
	}

	filtersJSON, err := json.Marshal(req.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filters: %w", err)
	}
	if string(filtersJSON) != "{}" {
		q.Set("filters", string(filtersJSON))
	}

	return q, nil
}

// DecodeResponse parses a listing body in top-level or data-wrapped form
func DecodeResponse(body []byte) (*domain.ListResponse, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &coreerrors.MalformedResponseError{Reason: "body is not a JSON object", Err: err}
	}

	payload := root
	if _, ok := root["courses"]; !ok {
		data, isObj := root["data"].(map[string]interface{})
		if !isObj {
			return nil, &coreerrors.MalformedResponseError{Reason: "no courses at top level or under data"}
		}
		payload = data
	}

	list, ok := payload["courses"].([]interface{})
	if !ok {
		return nil, &coreerrors.MalformedResponseError{Reason: "courses is not an array"}
	}

	courses := make([]domain.RawCourse, 0, len(list))
	for _, item := range list {
		// Non-object items stay in place as nil records so the normalizer drops them
		obj, _ := item.(map[string]interface{})
		courses = append(courses, domain.RawCourse(obj))
	}

	return &domain.ListResponse{
		Courses: courses,
		Total:   total(payload),
		Facets:  facets(payload),
	}, nil
}

func total(payload map[string]interface{}) int {
	if pg, ok := payload["pagination"].(map[string]interface{}); ok {
		for _, key := range []string{"total", "totalCourses", "total_count"} {
			if n, ok := parse.Int(pg[key]); ok {
				return n
			}
		}
	}
	if n, ok := parse.Int(payload["total"]); ok {
		return n
	}
	return 0
}

func facets(payload map[string]interface{}) domain.Facets {
	raw, ok := payload["facets"].(map[string]interface{})
	if !ok {
		return domain.Facets{}
	}
	return domain.Facets{
		Categories:  facetValues(raw["categories"]),
		SkillLevels: facetValues(raw["skillLevels"]),
		Languages:   facetValues(raw["languages"]),
		Features:    facetValues(raw["features"]),
	}
}

// facetValues accepts ["a","b"] or [{"value":"a","count":3}, {"_id":"b"}]
func facetValues(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, item := range list {
		if obj, isObj := item.(map[string]interface{}); isObj {
			for _, key := range []string{"value", "name", "_id"} {
				if s, ok := parse.String(obj[key]); ok {
					out = append(out, s)
					break
				}
			}
			continue
		}
		if s, ok := parse.String(item); ok {
			out = append(out, s)
		}
	}
	return out
}

func backendMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
