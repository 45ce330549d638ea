package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showOutput = "+----------+--------+\n" +
	"| Field    | Value  |\n" +
	"+----------+--------+\n" +
	"| id       | 42     |\n" +
	"| status   | ACTIVE |\n" +
	"+----------+--------+\n"

type recordingObserver struct {
	mode  string
	items int
	calls int
}

func (o *recordingObserver) ObserveParse(mode string, items int, _ time.Duration) {
	o.mode, o.items = mode, items
	o.calls++
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var payload string
	switch b := body.(type) {
	case string:
		payload = b
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		payload = string(data)
	}

	router := gin.New()
	router.POST("/", handler)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleParse_Modes(t *testing.T) {
	tests := []struct {
		mode      string
		wantMode  string
		wantCount int
		wantData  string
	}{
		{mode: "show", wantMode: "show", wantCount: 2, wantData: `{"id":"42","status":"ACTIVE"}`},
		{mode: "fields", wantMode: "fields", wantCount: 2, wantData: `[{"id":"42"},{"status":"ACTIVE"}]`},
		{mode: "list", wantMode: "list", wantCount: 2, wantData: `[{"Field":"id","Value":"42"},{"Field":"status","Value":"ACTIVE"}]`},
		{mode: "", wantMode: "table", wantCount: 2, wantData: `{"headers":["Field","Value"],"values":[["id","42"],["status","ACTIVE"]]}`},
		{mode: "RAW", wantMode: "raw", wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.wantMode, func(t *testing.T) {
			observer := &recordingObserver{}
			w := postJSON(t, HandleParse(observer), map[string]string{"output": showOutput, "mode": tt.mode})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp struct {
				Status string          `json:"status"`
				Mode   string          `json:"mode"`
				Data   json.RawMessage `json:"data"`
				Count  int             `json:"count"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			assert.Equal(t, "success", resp.Status)
			assert.Equal(t, tt.wantMode, resp.Mode)
			assert.Equal(t, tt.wantCount, resp.Count)
			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, string(resp.Data))
			}
			assert.Equal(t, 1, observer.calls)
			assert.Equal(t, tt.wantMode, observer.mode)
			assert.Equal(t, tt.wantCount, observer.items)
		})
	}
}

func TestHandleParse_EmptyOutputIsValid(t *testing.T) {
	w := postJSON(t, HandleParse(nil), map[string]string{"output": "", "mode": "list"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","mode":"list","data":[],"count":0}`, w.Body.String())
}

func TestHandleParse_BadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{name: "malformed JSON", body: `{"output": `, wantError: "Invalid request body"},
		{name: "missing output", body: `{"mode": "list"}`, wantError: "Invalid request body"},
		{name: "unknown mode", body: `{"output": "", "mode": "csv"}`, wantError: "Invalid parse mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer := &recordingObserver{}
			w := postJSON(t, HandleParse(observer), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
			assert.NotEmpty(t, resp["details"])
			assert.Zero(t, observer.calls)
		})
	}
}
