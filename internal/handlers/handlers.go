package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mpilhlt/hr-insights/internal/llm"
	"github.com/mpilhlt/hr-insights/internal/models"

	huma "github.com/danielgtaylor/huma/v2"
)

type contextKey string

// Context keys
const (
	DatasetKey = contextKey("dataset")
	ChatKey    = contextKey("chatClient")
)

// Error responses
var (
	ErrDatasetNotFound = errors.New("dataset not found in context")
	ErrChatNotFound    = errors.New("chat client not found in context")
)

// QuestionAnswerer is the slice of the chat-completion client that the
// ask handler needs. Tests can substitute their own implementation.
type QuestionAnswerer interface {
	Ask(ctx context.Context, system, user string) (*llm.Answer, error)
}

// AddRoutes adds all the routes to the API
func AddRoutes(ds *models.Dataset, chat QuestionAnswerer, api huma.API) error {
	err := RegisterDatasetRoutes(ds, api)
	if err != nil {
		fmt.Printf("    Unable to register Dataset routes: %v\n", err)
		return err
	}
	err = RegisterExplorerRoutes(ds, api)
	if err != nil {
		fmt.Printf("    Unable to register Explorer routes: %v\n", err)
		return err
	}
	err = RegisterChatRoutes(ds, chat, api)
	if err != nil {
		fmt.Printf("    Unable to register Chat routes: %v\n", err)
		return err
	}
	return nil
}

// Middleware to add the shared read-only dataset to the context
func addDatasetToContext[I any, O any](ds *models.Dataset, next func(context.Context, *I) (*O, error)) func(context.Context, *I) (*O, error) {
	return func(ctx context.Context, input *I) (*O, error) {
		if ds == nil {
			return nil, fmt.Errorf("provided dataset is nil")
		}
		ctx = context.WithValue(ctx, DatasetKey, ds)
		return next(ctx, input)
	}
}

// Middleware to add the chat client to the context
func addChatToContext[I any, O any](chat QuestionAnswerer, next func(context.Context, *I) (*O, error)) func(context.Context, *I) (*O, error) {
	return func(ctx context.Context, input *I) (*O, error) {
		if chat == nil {
			return nil, fmt.Errorf("provided chat client is nil")
		}
		ctx = context.WithValue(ctx, ChatKey, chat)
		return next(ctx, input)
	}
}

// Get the dataset from the context
// (exported helper function so that blackbox testing can access it)
func GetDataset(ctx context.Context) (*models.Dataset, error) {
	ds, ok := ctx.Value(DatasetKey).(*models.Dataset)
	if !ok {
		return nil, huma.NewError(http.StatusInternalServerError, ErrDatasetNotFound.Error())
	}
	return ds, nil
}

// Get the chat client from the context
// (exported helper function so that blackbox testing can access it)
func GetChat(ctx context.Context) (QuestionAnswerer, error) {
	chat, ok := ctx.Value(ChatKey).(QuestionAnswerer)
	if !ok {
		return nil, huma.NewError(http.StatusInternalServerError, ErrChatNotFound.Error())
	}
	return chat, nil
}

// requireDataset fetches the dataset from the context and rejects the
// request when it is empty (file was missing or malformed at startup).
// Dependent flows abort here instead of operating on zero rows.
func requireDataset(ctx context.Context) (*models.Dataset, error) {
	ds, err := GetDataset(ctx)
	if err != nil {
		return nil, err
	}
	if ds.IsEmpty() {
		return nil, huma.Error503ServiceUnavailable("dataset is empty or could not be loaded; check the CSV file on the server")
	}
	return ds, nil
}
