package quote

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Config configures a Source. Zero fields fall back to defaults.
type Config struct {
	Catalog Catalog
	Delay   time.Duration
	// Rand returns a value in [0, 1). Defaults to math/rand/v2 Float64.
	Rand   func() float64
	Logger *slog.Logger
	Tracer trace.Tracer
}

// Source hands out random quotes from a fixed catalog after a fixed delay.
// It never talks to the network and never fails.
type Source struct {
	catalog Catalog
	delay   time.Duration
	rand    func() float64
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSource creates a Source from cfg.
func NewSource(cfg Config) *Source {
	s := &Source{
		catalog: cfg.Catalog,
		delay:   cfg.Delay,
		rand:    cfg.Rand,
		logger:  cfg.Logger,
		tracer:  cfg.Tracer,
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.delay <= 0 {
		s.delay = DefaultDelay
	}
	if s.rand == nil {
		s.rand = rand.Float64
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("quotepage/quote")
	}
	return s
}

// Catalog returns the quotes this source picks from.
func (s *Source) Catalog() Catalog {
	return s.catalog
}

// Delay returns the artificial latency applied to every Retrieve.
func (s *Source) Delay() time.Duration {
	return s.delay
}

// Retrieve waits for the configured delay and returns a quote chosen
// uniformly at random from the catalog.
//
// An index outside the catalog is logged and yields "". A cancelled ctx also
// yields "" without picking.
func (s *Source) Retrieve(ctx context.Context) string {
	ctx, span := s.tracer.Start(ctx, "quote.retrieve")
	defer span.End()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		span.SetStatus(codes.Error, "cancelled")
		return ""
	case <-timer.C:
	}

	idx := PickIndex(s.rand(), len(s.catalog))
	span.SetAttributes(attribute.Int("quote.index", idx))
	if idx < 0 || idx >= len(s.catalog) {
		s.logger.ErrorContext(ctx, "quote index out of range",
			"index", idx,
			"catalog_size", len(s.catalog))
		span.SetStatus(codes.Error, "index out of range")
		return ""
	}
	return s.catalog[idx]
}

// PickIndex maps r in [0, 1) onto [0, size).
func PickIndex(r float64, size int) int {
	return int(math.Floor(r * float64(size)))
}
