package parse

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
		ok   bool
	}{
		{"plain", "  Go  ", "Go", true},
		{"blank", "   ", "", false},
		{"float", 12.0, "12", true},
		{"fraction", 4.25, "4.25", true},
		{"json number", json.Number("42"), "42", true},
		{"nan", math.NaN(), "", false},
		{"object", map[string]interface{}{"a": 1}, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := String(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{"float", 4.5, 4.5, true},
		{"int", 3, 3, true},
		{"numeric string", "4.7", 4.7, true},
		{"leading number", "4.5 stars", 4.5, true},
		{"negative", "-2", -2, true},
		{"garbage", "abc", 0, false},
		{"empty", "", 0, false},
		{"nan", math.NaN(), 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Float(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFloatOrZero(t *testing.T) {
	assert.Equal(t, 0.0, FloatOrZero("not a number"))
	assert.Equal(t, 2.5, FloatOrZero("2.5"))
}

func TestInt(t *testing.T) {
	n, ok := Int(12.9)
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = Int(nil)
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(true))
	assert.True(t, Bool("Yes"))
	assert.True(t, Bool("1"))
	assert.True(t, Bool(1.0))
	assert.False(t, Bool("no"))
	assert.False(t, Bool(0))
	assert.False(t, Bool(nil))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, Strings([]interface{}{"go", " ", "web"}))
	assert.Equal(t, []string{"a", "b"}, Strings("a, b,"))
	assert.Equal(t, []string{}, Strings(nil))
}

func TestLen(t *testing.T) {
	n, ok := Len([]interface{}{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = Len("abc")
	assert.False(t, ok)
}

func TestIntOrDefault(t *testing.T) {
	assert.Equal(t, 7, IntOrDefault("7", 1))
	assert.Equal(t, 1, IntOrDefault("x", 1))
	assert.Equal(t, 0, IntOrZero("x"))
}
