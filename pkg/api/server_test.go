package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/blob"
)

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPresignBiosignal(t *testing.T) {
	s := &Server{blobs: blob.NewMemStore("test-bucket")}
	router := s.Router()

	rec := postJSON(t, router, "/api/v1/participants/p1/biosignals/presign",
		`{"type": "hr", "device_id": "polar-h10"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Key    string `json:"key"`
		URL    string `json:"url"`
		Bucket string `json:"bucket"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Key, "biosignals/p1/hr_polar-h10_"), resp.Key)
	assert.True(t, strings.HasSuffix(resp.Key, ".json"), resp.Key)
	assert.Equal(t, "mem://test-bucket/"+resp.Key, resp.URL)
	assert.Equal(t, "test-bucket", resp.Bucket)
}

func TestPresignBiosignal_NoDevice(t *testing.T) {
	s := &Server{blobs: blob.NewMemStore("test-bucket")}
	router := s.Router()

	rec := postJSON(t, router, "/api/v1/participants/p1/biosignals/presign",
		`{"type": "eda"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Key, "biosignals/p1/eda_"), resp.Key)
	assert.NotContains(t, resp.Key, "__")
}

func TestPresignBiosignal_Invalid(t *testing.T) {
	s := &Server{blobs: blob.NewMemStore("test-bucket")}
	router := s.Router()

	// Missing type.
	rec := postJSON(t, router, "/api/v1/participants/p1/biosignals/presign", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unsafe characters end up in the key and are rejected.
	rec = postJSON(t, router, "/api/v1/participants/p1/biosignals/presign",
		`{"type": "eda signal"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
