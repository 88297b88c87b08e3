package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mpilhlt/hr-insights/internal/handlers"
	"github.com/mpilhlt/hr-insights/internal/llm"
	"github.com/mpilhlt/hr-insights/internal/models"

	huma "github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/require"
)

// --- Helper functions and types ---

// hrDataset is the shared fixture: two columns, one non-numeric and one
// numeric.
func hrDataset() *models.Dataset {
	return &models.Dataset{
		Columns: []string{"Department", "Salary"},
		Rows: [][]string{
			{"Eng", "100"},
			{"Eng", "200"},
			{"HR", "50"},
		},
	}
}

// startTestServer sets up router, API and an httptest server for
// testing. The server is closed automatically when the test ends.
func startTestServer(t *testing.T, ds *models.Dataset, chat handlers.QuestionAnswerer) *httptest.Server {
	t.Helper()

	// Create a new router & API
	cfg := huma.DefaultConfig("HR Insights API", "0.1.0")
	router := http.NewServeMux()
	api := humago.New(router, cfg)

	err := handlers.AddRoutes(ds, chat, api)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// stubChat is a canned QuestionAnswerer that records how often it was
// called.
type stubChat struct {
	answer *llm.Answer
	err    error
	calls  int
}

func (s *stubChat) Ask(ctx context.Context, system, user string) (*llm.Answer, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.answer, nil
}

// getJSON issues a GET request and decodes the response body into out.
func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	decode(t, resp, out)
	return resp
}

// postJSON issues a POST request with a JSON body and decodes the
// response body into out.
func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	decode(t, resp, out)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if out == nil {
		return
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "response body: %s", raw)
}
