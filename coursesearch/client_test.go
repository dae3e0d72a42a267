package coursesearch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServer serves a fixed data-wrapped listing and records queries
type catalogServer struct {
	mu      sync.Mutex
	queries []url.Values
	status  int
}

func (s *catalogServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.Query())
	status := s.status
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		w.Write([]byte(`{"message":"Catalog is down for maintenance"}`))
		return
	}

	courses := make([]map[string]interface{}, 0, 5)
	for i := 1; i <= 5; i++ {
		courses = append(courses, map[string]interface{}{
			"_id":          fmt.Sprintf("c-%d", i),
			"course_title": fmt.Sprintf("Course %d", i),
			"meta":         map[string]interface{}{"enrollments": 10, "completions": 5},
		})
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": map[string]interface{}{
			"courses":    courses,
			"pagination": map[string]interface{}{"total": 30},
			"facets":     map[string]interface{}{"languages": []string{"English", "Spanish"}},
		},
	})
}

func (s *catalogServer) lastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[len(s.queries)-1]
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()

	base := []Option{
		WithDebounce(0),
		WithLogger(QuietLogger()),
		WithClock(func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }),
	}
	c, err := New(srv.URL+"/api/courses", append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api/courses")
	assert.True(t, IsConfigurationError(err))
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := New("http://localhost/api/courses", WithPageSizes(0, 5))
	assert.True(t, IsConfigurationError(err))

	_, err = New("http://localhost/api/courses", WithDebounce(-time.Second))
	assert.True(t, IsConfigurationError(err))

	_, err = New("http://localhost/api/courses", WithSectionSize(0))
	assert.True(t, IsConfigurationError(err))
}

func TestClient_StartLoadsSections(t *testing.T) {
	catalog := &catalogServer{}
	srv := httptest.NewServer(catalog)
	defer srv.Close()

	c := newTestClient(t, srv)
	require.NoError(t, c.Start())
	c.Wait()

	state := c.State()
	assert.Equal(t, ModeIdle, state.Mode)
	assert.Empty(t, state.Results)

	secs := c.Sections()
	require.Len(t, secs, 4)
	for _, sec := range secs {
		assert.True(t, sec.Loaded, sec.Key)
		assert.Len(t, sec.Courses, 4)
	}
}

func TestClient_SearchEndToEnd(t *testing.T) {
	catalog := &catalogServer{}
	srv := httptest.NewServer(catalog)
	defer srv.Close()

	c := newTestClient(t, srv, WithSections(false))
	require.NoError(t, c.Start())

	c.SetQuery("golang")
	c.Apply()
	c.Wait()

	state := c.State()
	assert.Equal(t, ModeSearch, state.Mode)
	assert.Len(t, state.Results, 5)
	assert.Equal(t, "Course 1", state.Results[0].Title)
	assert.Equal(t, 50, state.Results[0].CompletionRate)
	assert.Equal(t, 30, state.TotalResults)
	assert.Equal(t, 3, state.TotalPages)
	assert.Equal(t, []string{"English", "Spanish"}, state.Facets.Languages)
	assert.Nil(t, state.Error)

	q := catalog.lastQuery()
	assert.Equal(t, "golang", q.Get("search"))
	assert.Equal(t, "12", q.Get("limit"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "Published", q.Get("status"))
}

func TestClient_FilterUsesLatestMode(t *testing.T) {
	catalog := &catalogServer{}
	srv := httptest.NewServer(catalog)
	defer srv.Close()

	c := newTestClient(t, srv, WithSections(false))
	require.NoError(t, c.Start())

	require.NoError(t, c.ToggleFilter(Category, "Programming"))
	c.Wait()

	state := c.State()
	assert.Equal(t, ModeLatestFiltered, state.Mode)
	assert.Equal(t, 1, state.TotalPages)
	require.Len(t, state.ActiveFilters, 1)

	q := catalog.lastQuery()
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "Programming", q.Get("course_category"))
	assert.JSONEq(t, `{"sortBy":"newest"}`, q.Get("filters"))
}

func TestClient_ToggleFilterRejectsUnknownValue(t *testing.T) {
	srv := httptest.NewServer(&catalogServer{})
	defer srv.Close()

	c := newTestClient(t, srv, WithSections(false))
	err := c.ToggleFilter(Duration, "forever")
	assert.True(t, IsValidationError(err))
}

func TestClient_BackendMessageIsShown(t *testing.T) {
	catalog := &catalogServer{status: http.StatusServiceUnavailable}
	srv := httptest.NewServer(catalog)
	defer srv.Close()

	c := newTestClient(t, srv, WithSections(false))
	c.SetQuery("golang")
	c.Apply()
	c.Wait()

	state := c.State()
	require.NotNil(t, state.Error)
	assert.Equal(t, "Catalog is down for maintenance", *state.Error)
	assert.Empty(t, state.Results)
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(&catalogServer{})
	defer srv.Close()

	c := newTestClient(t, srv)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.ErrorIs(t, c.Start(), ErrClientClosed)
}

func TestOptions(t *testing.T) {
	opts := Options()
	assert.Len(t, opts.ContentTypes, 4)
	assert.Len(t, opts.SortKeys, 4)
	assert.Contains(t, opts.Categories, "Programming")
}
