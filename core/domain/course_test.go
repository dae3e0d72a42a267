package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawCourse_Lookup(t *testing.T) {
	raw := RawCourse{
		"title": "Go Basics",
		"meta": map[string]interface{}{
			"ratings": map[string]interface{}{
				"average": 4.5,
			},
			"views": nil,
		},
	}

	tests := []struct {
		name  string
		path  string
		want  interface{}
		found bool
	}{
		{"top level", "title", "Go Basics", true},
		{"nested", "meta.ratings.average", 4.5, true},
		{"missing leaf", "meta.ratings.count", nil, false},
		{"nil value", "meta.views", nil, false},
		{"through scalar", "title.length", nil, false},
		{"empty path", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := raw.Lookup(tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawCourse_First(t *testing.T) {
	raw := RawCourse{"title": "Fallback", "thumbnail": "b.png"}

	v, ok := raw.First("course_title", "title")
	assert.True(t, ok)
	assert.Equal(t, "Fallback", v)

	_, ok = raw.First("course_image", "image")
	assert.False(t, ok)
}

func TestRawCourse_LookupNilReceiver(t *testing.T) {
	var raw RawCourse
	_, ok := raw.Lookup("title")
	assert.False(t, ok)
}

func TestFilterSet_CloneIsDeep(t *testing.T) {
	original := NewFilterSet()
	original.Categories["design"] = true

	clone := original.Clone()
	clone.Categories["marketing"] = true
	delete(clone.Categories, "design")

	assert.True(t, original.Categories["design"])
	assert.False(t, original.Categories["marketing"])
	assert.Equal(t, ContentTypeAll, clone.ContentType)
}
