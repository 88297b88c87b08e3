package models

// Options for the CLI.
type Options struct {
	Debug        bool   `doc:"Enable debug logging" short:"d" default:"false"`
	Host         string `doc:"Hostname to listen on" default:"localhost"`
	Port         int    `doc:"Port to listen on" short:"p" default:"8888"`
	DatasetPath  string `doc:"Path to the HR dataset CSV file" default:"hr_dataset_switzerland.csv"`
	ChatEndpoint string `doc:"Chat-completion endpoint URL" default:"https://api.openai.com/v1/chat/completions"`
	ChatModel    string `doc:"Chat-completion model identifier" default:"gpt-4o-mini"`
}
