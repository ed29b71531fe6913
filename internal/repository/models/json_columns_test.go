package models

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       StringSlice
		wantVal driver.Value
	}{
		{name: "nil slice", s: nil, wantVal: "[]"},
		{name: "empty slice", s: StringSlice{}, wantVal: "[]"},
		{name: "one element", s: StringSlice{"apple"}, wantVal: `["apple"]`},
		{name: "multiple elements", s: StringSlice{"apple", "banana"}, wantVal: `["apple","banana"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    StringSlice
		wantErr bool
	}{
		{name: "nil", value: nil, want: StringSlice{}},
		{name: "empty string", value: "", want: StringSlice{}},
		{name: "json null", value: "null", want: StringSlice{}},
		{name: "string", value: `["a","b"]`, want: StringSlice{"a", "b"}},
		{name: "bytes", value: []byte(`["c"]`), want: StringSlice{"c"}},
		{name: "unsupported", value: 42, wantErr: true},
		{name: "bad json", value: "[", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestAudience_ValueScan(t *testing.T) {
	a := Audience{Programme: []string{"btech"}, Branch: []string{"cse"}, Section: []string{}, Group: []string{}}
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"programme":["btech"],"branch":["cse"],"section":[],"group":[]}`, v)

	var got Audience
	require.NoError(t, got.Scan(v))
	assert.Equal(t, a, got)

	var empty Audience
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, Audience{}, empty)
	assert.Error(t, empty.Scan(3.14))
}
