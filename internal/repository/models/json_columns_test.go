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
		{name: "element with quotes", s: StringSlice{`say "hi"`, "Node.js"}, wantVal: `["say \"hi\"","Node.js"]`},
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
		{name: "null literal", value: "null", want: StringSlice{}},
		{name: "json string", value: `["Go","SQL"]`, want: StringSlice{"Go", "SQL"}},
		{name: "json bytes", value: []byte(`["Go"]`), want: StringSlice{"Go"}},
		{name: "unsupported type", value: 42, wantErr: true},
		{name: "malformed", value: `["Go"`, wantErr: true},
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

func TestJSONList(t *testing.T) {
	ranges := JSONList[SalaryRange]{{Level: "entry", Min: 1, Max: 2}}
	v, err := ranges.Value()
	require.NoError(t, err)
	assert.Equal(t, `[{"level":"entry","min":1,"max":2}]`, v)

	var scanned JSONList[SalaryRange]
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, ranges, scanned)

	var empty JSONList[DemandRange]
	require.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
