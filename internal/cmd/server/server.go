// Package server parses server command flags and launches the addon
// generation service.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Anteater2019/ai-minecraft-platform/internal/generate"
	"github.com/Anteater2019/ai-minecraft-platform/internal/platform/config"
	"github.com/Anteater2019/ai-minecraft-platform/internal/platform/otel"
	"github.com/Anteater2019/ai-minecraft-platform/internal/web"
)

// Config holds server command configuration.
type Config struct {
	Port           int    `env:"PORT" envDefault:"8000"`
	OllamaBaseURL  string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	Model          string `env:"MODEL_NAME" envDefault:"deepseek-coder"`
	MaxRetries     int    `env:"MAX_RETRIES" envDefault:"3"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The HTTP server port")
	fs.StringVar(&cfg.OllamaBaseURL, "ollama-url", cfg.OllamaBaseURL, "Base URL of the Ollama instance")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Model used for mob generation")
	fs.IntVar(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Generation attempts before giving up")
	fs.StringVar(&cfg.FrontendOrigin, "frontend-origin", cfg.FrontendOrigin, "Origin allowed by CORS")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the addon generation service and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "ai-minecraft-platform")
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	client := generate.NewClient(generate.ClientConfig{
		BaseURL: cfg.OllamaBaseURL,
		Model:   cfg.Model,
	})
	generator := generate.NewGenerator(client, cfg.MaxRetries)

	srv, err := web.NewServer(web.Config{
		HTTPAddr:       fmt.Sprintf(":%d", cfg.Port),
		FrontendOrigin: cfg.FrontendOrigin,
	}, generator)
	if err != nil {
		return fmt.Errorf("build web server: %w", err)
	}

	return srv.ListenAndServe(ctx)
}
