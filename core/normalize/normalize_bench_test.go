package normalize

import (
	"fmt"
	"testing"

	"course-search-api/core/domain"
)

func benchRecords(n int) []domain.RawCourse {
	raws := make([]domain.RawCourse, 0, n)
	for i := 0; i < n; i++ {
		raw := domain.RawCourse{
			"_id":             fmt.Sprintf("c-%d", i),
			"course_title":    fmt.Sprintf("Course %d", i),
			"course_duration": "3 week",
			"course_category": []interface{}{"Programming"},
			"meta": map[string]interface{}{
				"ratings":     map[string]interface{}{"average": 4.5, "count": 20},
				"enrollments": 200,
				"completions": 50,
				"lastUpdated": "2025-06-12T12:00:00Z",
			},
			"course_tags": []interface{}{"go", "backend"},
		}
		// Every tenth record uses the legacy schema
		if i%10 == 0 {
			raw = domain.RawCourse{
				"id":                fmt.Sprintf("legacy-%d", i),
				"title":             "Legacy",
				"enrolled_students": []interface{}{map[string]interface{}{"completed": true}},
				"updatedAt":         "2024-01-01T00:00:00Z",
			}
		}
		raws = append(raws, raw)
	}
	return raws
}

func BenchmarkNormalize(b *testing.B) {
	raw := benchRecords(1)[0]

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Normalize(raw, fixedNow)
	}
}

func BenchmarkBatch(b *testing.B) {
	sizes := []int{12, 100, 1000}

	for _, size := range sizes {
		raws := benchRecords(size)
		b.Run(fmt.Sprintf("records_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Batch(raws, fixedNow, nil)
			}
		})
	}
}
