//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the canonical response shape for assertions.
type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	assert.True(t, env.OK, "expected ok=true envelope")
	assert.Nil(t, env.Error, "success envelope must not carry an error")

	// dataは空集合のとき省略される（omitempty）ので、存在するときだけ展開する
	if targetStruct != nil && len(env.Data) > 0 {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode data payload: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, env.OK, "expected ok=false envelope")
	require.NotNil(t, env.Error, "error envelope must carry an error body")

	if expectedCode != "" {
		assert.Equal(t, expectedCode, env.Error.Code, "error code mismatch")
	}
}

// AssertFieldError checks that the error detail list references a field.
func AssertFieldError(t *testing.T, w *httptest.ResponseRecorder, field string) {
	t.Helper()

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err)
	require.NotNil(t, env.Error)

	for _, d := range env.Error.Details {
		if d.Field == field {
			return
		}
	}
	t.Errorf("error details do not reference field %q: %s", field, w.Body.String())
}
