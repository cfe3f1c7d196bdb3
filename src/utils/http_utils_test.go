package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateETag(t *testing.T) {
	a1, err := GenerateETag(map[string]int{"total": 3})
	require.NoError(t, err)
	a2, err := GenerateETag(map[string]int{"total": 3})
	require.NoError(t, err)
	assert.Equal(t, a1, a2, "equal payloads must produce equal ETags")

	b, err := GenerateETag(map[string]int{"total": 4})
	require.NoError(t, err)
	assert.NotEqual(t, a1, b)

	_, err = GenerateETag(make(chan int))
	assert.Error(t, err)
}

func TestSendJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	SendJSONError(rec, "something went wrong", 400)

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong", body["error"])
}

func TestSendJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	SendJSON(rec, map[string]int{"count": 7}, 200)

	assert.Equal(t, 200, rec.Code)
	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 7, body["count"])
}
