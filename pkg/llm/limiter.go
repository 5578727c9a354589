package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimited struct {
	next    ChatModel
	limiter *rate.Limiter
}

// NewRateLimited caps calls to perMinute with a burst of one. perMinute <= 0
// returns model unchanged. Waiting honours ctx, so the caller's scoring
// deadline also bounds time spent in the queue.
func NewRateLimited(model ChatModel, perMinute int) ChatModel {
	if perMinute <= 0 {
		return model
	}
	return &rateLimited{
		next:    model,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1),
	}
}

func (r *rateLimited) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", waitError(ctx, err)
	}
	return r.next.Ask(ctx, systemPrompt, userPrompt)
}

// waitError maps a refused wait onto the context error. rate.Limiter refuses
// up front when the next token lands after ctx's deadline, before ctx expires.
func waitError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("llm rate limit: %w", ctxErr)
	}
	if _, ok := ctx.Deadline(); ok {
		return fmt.Errorf("llm rate limit: %v: %w", err, context.DeadlineExceeded)
	}
	return fmt.Errorf("llm rate limit: %w", err)
}
