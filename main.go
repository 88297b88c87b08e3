package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/mpilhlt/hr-insights/internal/config"
	"github.com/mpilhlt/hr-insights/internal/dataset"
	"github.com/mpilhlt/hr-insights/internal/handlers"
	"github.com/mpilhlt/hr-insights/internal/llm"
	"github.com/mpilhlt/hr-insights/internal/models"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/danielgtaylor/huma/v2/humacli"

	huma "github.com/danielgtaylor/huma/v2"
)

// The two interactive screens (explorer and Q&A) are plain static pages
// driving the API with fetch calls.
//
//go:embed web
var webFS embed.FS

func main() {
	// Create a CLI app
	cli := humacli.New(func(hooks humacli.Hooks, options *models.Options) {

		println()
		println("=== Starting HR Insights ...")
		fmt.Printf("    Options are debug:%v host:%v port:%v dataset:%s model:%s\n",
			options.Debug, options.Host, options.Port, options.DatasetPath, options.ChatModel)

		// The API key is the one fatal configuration condition: without
		// it no request may proceed, so halt before serving anything.
		apiKey, err := config.LoadSecret(config.SecretEnvVar)
		if err != nil {
			fmt.Printf("    %v\n", err)
			os.Exit(1)
		}

		// Load the dataset exactly once; the handle is shared read-only
		// between all handlers and there is no re-initialization path.
		// A missing or malformed file is surfaced but not fatal: the
		// server starts with an empty dataset and every dependent
		// operation aborts gracefully.
		ds, err := dataset.Load(options.DatasetPath)
		if err != nil {
			fmt.Printf("    Warning: %v (continuing with an empty dataset)\n", err)
		} else {
			fmt.Printf("    Loaded dataset %s: %d columns, %d rows\n",
				options.DatasetPath, len(ds.Columns), len(ds.Rows))
		}

		chat := llm.NewClient(options.ChatEndpoint, options.ChatModel, apiKey, nil)

		// Create a new router & API
		cfg := huma.DefaultConfig("HR Insights API", "0.1.0")
		router := http.NewServeMux()
		api := humago.New(router, cfg)

		// Add routes to the API
		err = handlers.AddRoutes(ds, chat, api)
		if err != nil {
			fmt.Printf("    Unable to add routes: %v\n", err)
			os.Exit(1)
		}

		// Serve the two static screens alongside the API.
		pages, err := fs.Sub(webFS, "web")
		if err != nil {
			fmt.Printf("    Unable to set up static pages: %v\n", err)
			os.Exit(1)
		}
		router.Handle("/", http.FileServer(http.FS(pages)))

		// Create the HTTP server
		server := &http.Server{
			Addr:    fmt.Sprintf("%s:%d", options.Host, options.Port),
			Handler: router,
		}

		// Start server
		hooks.OnStart(func() {
			fmt.Printf("=== Starting API server on port %d...\n\n", options.Port)
			err := server.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				fmt.Printf("listen error: %s\n", err)
			} else {
				fmt.Printf("    API server on port %d stopped.\n", options.Port)
			}
		})

		// Gracefully shutdown server
		hooks.OnStop(func() {
			fmt.Printf("\n=== Shutting down API server on port %d...\n", options.Port)

			// Create a context with a timeout for the shutdown process
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Attempt to gracefully shut down the server
			if err := server.Shutdown(ctx); err != nil {
				fmt.Printf("Shutdown error: %v\n", err)
			}

			fmt.Print("=== HR Insights stopped.\n\n")
		})
	})

	// Run the CLI. When passed no commands, it starts the server.
	cli.Run()
}
