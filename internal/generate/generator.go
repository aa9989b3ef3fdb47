package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anteater2019/ai-minecraft-platform/internal/mob"
)

// defaultMaxAttempts bounds how many times a prompt is retried against the
// model before the content is declared unusable.
const defaultMaxAttempts = 3

// Invoker produces raw model text for a prompt.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Generator turns free-form prompts into validated mob records, retrying
// unusable model output a bounded number of times.
type Generator struct {
	client      Invoker
	maxAttempts int
}

// NewGenerator builds a generator around an invoker. A non-positive
// maxAttempts falls back to the default.
func NewGenerator(client Invoker, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Generator{client: client, maxAttempts: maxAttempts}
}

// Generate invokes the model with identical input until a valid record is
// produced or attempts run out. An unreachable service aborts immediately;
// only unusable content is retried.
func (g *Generator) Generate(ctx context.Context, prompt string) (mob.Mob, error) {
	var lastErr error
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		raw, err := g.client.Invoke(ctx, prompt)
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				return mob.Mob{}, err
			}
			lastErr = err
			continue
		}

		record, err := parseRecord(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return record, nil
	}
	return mob.Mob{}, fmt.Errorf("%w after %d attempts: %v", ErrInvalidRecord, g.maxAttempts, lastErr)
}
