package intent

import (
	"context"
	"log/slog"
)

// FallbackClient tries a primary interpreter and falls back to a
// secondary when the primary errors. Command resolution must never stall
// on an interpreter outage, so the usual pairing is the hosted
// interpreter backed by the keyword classifier.
type FallbackClient struct {
	primary   Client
	secondary Client
}

// NewFallbackClient wraps primary with secondary as the fallback.
func NewFallbackClient(primary, secondary Client) *FallbackClient {
	return &FallbackClient{
		primary:   primary,
		secondary: secondary,
	}
}

// Interpret implements Client.
func (c *FallbackClient) Interpret(ctx context.Context, input *InterpretInput) (*InterpretOutput, error) {
	output, err := c.primary.Interpret(ctx, input)
	if err == nil {
		return output, nil
	}

	slog.Warn("primary intent interpreter failed, using fallback",
		"error", err.Error(),
	)
	return c.secondary.Interpret(ctx, input)
}
