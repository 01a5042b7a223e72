package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWholeNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    WholeNumber
		wantErr bool
	}{
		{"10", 10, false},
		{"10.0", 10, false},
		{"1e1", 10, false},
		{"-3", -3, false},
		{"3.5", 0, true},
		{`"10"`, 0, true},
		{"true", 0, true},
		{"1e20", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var n WholeNumber
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestWholeNumber_InStruct(t *testing.T) {
	var v struct {
		ID *WholeNumber `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":2.0}`), &v))
	require.NotNil(t, v.ID)
	assert.Equal(t, WholeNumber(2), *v.ID)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2}`, string(raw))
}
