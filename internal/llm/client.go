// Package llm is a minimal client for an OpenAI-style chat-completion
// endpoint. It issues exactly one synchronous HTTP POST per question,
// with fixed sampling parameters, and maps every failure mode onto a
// typed RequestError so callers can render it without inspecting raw
// response bodies.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fixed sampling parameters for every request: low randomness and a
// bounded output length.
const (
	Temperature = 0.1
	MaxTokens   = 10000
)

// Error kinds carried by RequestError.
const (
	KindTransport             = "transport"
	KindUpstream              = "upstream"
	KindContextLengthExceeded = "context_length_exceeded"
)

// RequestError is the failure side of an Ask call. Kind lets the caller
// specialize the rendering, notably to suggest chunking or retrieval
// strategies when the model's input-length limit was exceeded.
type RequestError struct {
	Kind    string
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// HTTPClient is the subset of http.Client the chat client needs.
// Tests substitute their own implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Message is one segment of the conversation sent to the endpoint.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Answer is the success side of an Ask call.
type Answer struct {
	Text  string
	Model string
}

// chatRequest is the chat-completion request body.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// chatResponse is the chat-completion response body. A response carries
// either a choices array or an error indication, never both.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Client calls a single chat-completion endpoint with a fixed model
// identifier and a bearer token.
type Client struct {
	endpoint string
	model    string
	apiKey   string
	client   HTTPClient
}

// NewClient creates a chat-completion client. If httpClient is nil, a
// default client with a 60 second timeout is used.
func NewClient(endpoint, model, apiKey string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		client:   httpClient,
	}
}

// Model returns the fixed model identifier the client sends.
func (c *Client) Model() string {
	return c.model
}

// Ask sends a two-segment prompt (system instruction, then user
// content) to the endpoint and returns the first generated choice.
// There is exactly one HTTP round trip and no retry; on failure the
// returned error is a *RequestError.
func (c *Client) Ask(ctx context.Context, system, user string) (*Answer, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Message: fmt.Sprintf("unable to build request body: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Message: fmt.Sprintf("unable to create HTTP request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Message: fmt.Sprintf("chat-completion request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Kind: KindTransport, Message: fmt.Sprintf("unable to read chat-completion response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(fmt.Sprintf("chat-completion endpoint returned status %d: %s", resp.StatusCode, truncate(string(body), 300)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, upstreamError(fmt.Sprintf("unable to decode chat-completion response: %v", err))
	}
	if parsed.Error != nil {
		return nil, upstreamError(parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, &RequestError{Kind: KindUpstream, Message: "no valid response"}
	}

	model := parsed.Model
	if model == "" {
		model = c.model
	}
	return &Answer{Text: parsed.Choices[0].Message.Content, Model: model}, nil
}

// upstreamError classifies an upstream failure message, flagging
// input-length overflows so the caller can suggest chunking.
func upstreamError(message string) *RequestError {
	kind := KindUpstream
	if IsContextLengthError(message) {
		kind = KindContextLengthExceeded
	}
	return &RequestError{Kind: kind, Message: message}
}

// IsContextLengthError reports whether an upstream error message
// textually indicates that the model's input-length limit was exceeded.
func IsContextLengthError(message string) bool {
	m := strings.ToLower(message)
	for _, marker := range []string{
		"context length",
		"context_length_exceeded",
		"maximum context",
		"too many tokens",
	} {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
