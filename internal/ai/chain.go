package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

var (
	ErrNoProviders  = errors.New("no ai providers configured")
	ErrEmptyAnswer  = errors.New("empty answer")
	ErrInvalidShape = errors.New("answer does not match the expected shape")
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeInvalid = "invalid"
)

// Completion is the result of a chain call. When Unavailable is set, every provider failed
// and the caller is expected to fall back to its static answer.
type Completion struct {
	Text        string
	Provider    string
	Unavailable error
}

func (c Completion) OK() bool {
	return c.Unavailable == nil
}

// Chain asks the providers in order and returns the first acceptable answer.
type Chain struct {
	providers      []Provider
	timeout        time.Duration
	metricsManager *metrics.Manager
}

func NewChain(timeout time.Duration, metricsManager *metrics.Manager, providers ...Provider) *Chain {
	return &Chain{
		providers:      providers,
		timeout:        timeout,
		metricsManager: metricsManager,
	}
}

func (c *Chain) Providers() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

func (c *Chain) Complete(ctx context.Context, system, prompt string, maxTokens int) Completion {
	return c.CompleteFunc(ctx, system, prompt, maxTokens, nil)
}

// CompleteJSON extracts the JSON object (or array, when v points to a slice) from the answer
// and decodes it into v. An answer that does not decode counts as a provider failure.
func (c *Chain) CompleteJSON(ctx context.Context, system, prompt string, maxTokens int, v any) Completion {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return Completion{Unavailable: fmt.Errorf("%w: non-pointer target %T", ErrInvalidShape, v)}
	}

	extract := ExtractJSON
	if target.Elem().Kind() == reflect.Slice {
		extract = ExtractJSONArray
	}

	return c.CompleteFunc(ctx, system, prompt, maxTokens, func(text string) error {
		target.Elem().SetZero()
		if err := json.Unmarshal([]byte(extract(text)), v); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidShape, err)
		}
		return nil
	})
}

// CompleteFunc runs each provider under its own deadline. accept, when set, validates an answer;
// a rejected answer moves on to the next provider.
func (c *Chain) CompleteFunc(
	ctx context.Context,
	system, prompt string,
	maxTokens int,
	accept func(text string) error,
) Completion {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai.chain.complete")
	defer span.End()

	if len(c.providers) == 0 {
		span.SetAttributes(attribute.Bool("ai.unavailable", true))
		return Completion{Unavailable: ErrNoProviders}
	}

	var errs error
	for _, p := range c.providers {
		if ctx.Err() != nil {
			errs = multierr.Append(errs, ctx.Err())
			break
		}

		text, err := c.callProvider(ctx, p, system, prompt, maxTokens)
		if err == nil && strings.TrimSpace(text) == "" {
			err = ErrEmptyAnswer
		}
		if err != nil {
			log.Warnf("ai provider %s failed: %s", p.Name(), err)
			c.countCall(p.Name(), outcomeError)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}

		if accept != nil {
			if err := accept(text); err != nil {
				log.Warnf("ai provider %s answer rejected: %s", p.Name(), err)
				c.countCall(p.Name(), outcomeInvalid)
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name(), err))
				continue
			}
		}

		c.countCall(p.Name(), outcomeSuccess)
		span.SetAttributes(attribute.String("ai.provider", p.Name()))
		return Completion{
			Text:     text,
			Provider: p.Name(),
		}
	}

	span.SetAttributes(attribute.Bool("ai.unavailable", true))
	return Completion{Unavailable: errs}
}

func (c *Chain) callProvider(ctx context.Context, p Provider, system, prompt string, maxTokens int) (string, error) {
	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if c.metricsManager != nil {
			c.metricsManager.HistogramAIProviderDuration.
				WithLabelValues(p.Name()).
				Observe(time.Since(start).Seconds())
		}
	}()

	return p.Complete(callCtx, system, prompt, maxTokens)
}

func (c *Chain) countCall(provider, outcome string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterAIProviderCalls.WithLabelValues(provider, outcome).Inc()
}
