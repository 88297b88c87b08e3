package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mpilhlt/hr-insights/internal/dataset"
	"github.com/mpilhlt/hr-insights/internal/llm"
	"github.com/mpilhlt/hr-insights/internal/models"

	"github.com/danielgtaylor/huma/v2"
)

// SystemPrompt is the fixed system instruction of every Q&A request.
const SystemPrompt = "You are an HR data analyst. Answer questions using only the HR dataset provided in the user message. If the data does not contain the answer, say so."

// SizeWarningThreshold is the serialized-dataset length (in characters)
// above which the response carries an advisory truncation warning. The
// warning never blocks the request.
const SizeWarningThreshold = 10000

// EmptyQuestionPrompt is returned when the user submits no question.
// This is a no-op, not an error.
const EmptyQuestionPrompt = "Please enter a question about the dataset."

// postAskFunc bundles the serialized dataset and the question into a
// two-segment prompt and issues exactly one chat-completion call.
// Identical questions issue identical fresh requests every time; answers
// are never cached.
func postAskFunc(ctx context.Context, input *models.PostAskRequest) (*models.PostAskResponse, error) {
	response := &models.PostAskResponse{}

	question := strings.TrimSpace(input.Body.Question)
	if question == "" {
		response.Body.Prompt = EmptyQuestionPrompt
		return response, nil
	}

	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}
	chat, err := GetChat(ctx)
	if err != nil {
		return nil, err
	}

	serialized, err := dataset.Serialize(ds)
	if err != nil {
		return nil, huma.Error500InternalServerError(fmt.Sprintf("unable to serialize dataset. %v", err))
	}
	if len(serialized) > SizeWarningThreshold {
		response.Body.Warning = fmt.Sprintf("serialized dataset is %d characters; the model may truncate its input", len(serialized))
	}

	answer, err := chat.Ask(ctx, SystemPrompt, serialized+"\n\nQuestion: "+question)
	if err != nil {
		var reqErr *llm.RequestError
		if errors.As(err, &reqErr) && reqErr.Kind == llm.KindContextLengthExceeded {
			return nil, huma.Error502BadGateway(reqErr.Message + " The dataset exceeds the model's input-length limit; consider chunking it or using a retrieval strategy.")
		}
		return nil, huma.Error502BadGateway(err.Error())
	}

	response.Body.Answer = answer.Text
	response.Body.Model = answer.Model
	return response, nil
}

// RegisterChatRoutes registers the Q&A route with the API
func RegisterChatRoutes(ds *models.Dataset, chat QuestionAnswerer, api huma.API) error {
	// Define huma.Operations for each route
	postAskOp := huma.Operation{
		OperationID: "postAsk",
		Method:      http.MethodPost,
		Path:        "/v1/chat/ask",
		Summary:     "Ask a free-text question about the dataset",
		Tags:        []string{"chat"},
	}

	// Register the route with middleware
	huma.Register(api, postAskOp, addDatasetToContext(ds, addChatToContext(chat, postAskFunc)))
	return nil
}
