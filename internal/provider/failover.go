package provider

import (
	"context"
	"encoding/json"
	"errors"
)

// Result is a successful failover outcome: the raw provider JSON and the
// name of the provider that produced it.
type Result struct {
	Raw      json.RawMessage `json:"raw"`
	Provider string          `json:"provider"`
}

// Orchestrator issues a query against the primary provider and, on any
// primary failure (not configured, non-2xx, transport error), retries it
// once against the fallback. The fallback has a looser auth model and a
// different response shape, so it is attempted on every primary failure
// rather than on specific error codes. No further retries, no backoff: a
// second manual attempt by the user is the expected recovery path.
type Orchestrator struct {
	primary  Client
	fallback Client
}

// NewOrchestrator wires the two providers. Primary order matters; the
// fallback is only consulted when the primary fails.
func NewOrchestrator(primary, fallback Client) *Orchestrator {
	return &Orchestrator{primary: primary, fallback: fallback}
}

func (o *Orchestrator) SearchByName(ctx context.Context, query string, limit int) (Result, error) {
	return o.run(func(c Client) (json.RawMessage, error) {
		return c.SearchByName(ctx, query, limit)
	})
}

func (o *Orchestrator) ByBodyPart(ctx context.Context, bodyPart string, limit int) (Result, error) {
	return o.run(func(c Client) (json.RawMessage, error) {
		return c.ByBodyPart(ctx, bodyPart, limit)
	})
}

func (o *Orchestrator) ByEquipment(ctx context.Context, equipment string, limit int) (Result, error) {
	return o.run(func(c Client) (json.RawMessage, error) {
		return c.ByEquipment(ctx, equipment, limit)
	})
}

func (o *Orchestrator) ByTarget(ctx context.Context, target string, limit int) (Result, error) {
	return o.run(func(c Client) (json.RawMessage, error) {
		return c.ByTarget(ctx, target, limit)
	})
}

func (o *Orchestrator) ByID(ctx context.Context, id string) (Result, error) {
	return o.run(func(c Client) (json.RawMessage, error) {
		return c.ByID(ctx, id)
	})
}

func (o *Orchestrator) run(call func(Client) (json.RawMessage, error)) (Result, error) {
	raw, primaryErr := call(o.primary)
	if primaryErr == nil {
		return Result{Raw: raw, Provider: o.primary.Name()}, nil
	}

	// A bad query fails identically on both providers; surface it as-is
	// instead of burning a fallback call.
	var invalid InvalidArgumentError
	if errors.As(primaryErr, &invalid) {
		return Result{}, primaryErr
	}

	raw, fallbackErr := call(o.fallback)
	if fallbackErr == nil {
		return Result{Raw: raw, Provider: o.fallback.Name()}, nil
	}

	return Result{}, &BothFailedError{Primary: primaryErr, Fallback: fallbackErr}
}
