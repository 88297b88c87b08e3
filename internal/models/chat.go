package models

import "net/http"

// Request and Response structs for the Q&A API

// Ask a free-text question about the dataset
// Path: "/v1/chat/ask"

type PostAskRequest struct {
	Body struct {
		// No minLength here: an empty question is a no-op prompt to the
		// user, not a validation error.
		Question string `json:"question" maxLength:"2000" example:"Which department has the highest average salary?" doc:"Free-text question about the dataset"`
	}
}

type PostAskResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Answer  string `json:"answer,omitempty" doc:"Generated answer text"`
		Model   string `json:"model,omitempty" doc:"Model that produced the answer"`
		Prompt  string `json:"prompt,omitempty" doc:"User-facing prompt when no question was submitted"`
		Warning string `json:"warning,omitempty" doc:"Advisory warning, e.g. when the serialized dataset is large"`
	}
}
