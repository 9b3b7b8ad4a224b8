package multiply

//go:generate mockgen -source=multiplier.go -destination=mocks/mock_multiplier.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/decicalc/internal/dft"
	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/agbru/decicalc/internal/fixed"
)

// ErrUnsupported reports operands outside the range an algorithm can
// multiply exactly. Orchestration treats it as a skip, not a failure.
var ErrUnsupported = errors.New("operands out of range for this algorithm")

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decicalc_multiplications_total",
			Help: "The total number of multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "decicalc_multiplication_duration_seconds",
			Help:    "The duration of multiplications in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"algorithm"},
	)
	operandDigits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "decicalc_operand_digits",
			Help:    "Number of significant digits per multiplication operand",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)
)

// ProgressUpdate is a progress notification from one of several concurrently
// running multipliers.
type ProgressUpdate struct {
	// Index identifies the multiplier within the current run.
	Index int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// ProgressReporter receives the completed fraction of a multiplication.
type ProgressReporter func(progress float64)

// Options tunes how the algorithms read their operands.
type Options struct {
	// Order is the digit order the transform-based algorithms feed to the
	// convolution. The product is the same in either order.
	Order dft.Order
}

// Multiplier is the public interface of a multiplication algorithm.
type Multiplier interface {
	// Multiply returns a*b for decimal text operands. It is safe for
	// concurrent use and honours cancellation of ctx. Progress updates are
	// sent to progressChan when it is not nil.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates.
	//   - index: The position of this multiplier within the current run.
	//   - a, b: The operands, as [-]digits[.digits].
	//   - opts: Algorithm options.
	//
	// Returns:
	//   - string: The product in canonical decimal form.
	//   - error: An ArithmeticError for malformed operands, a
	//     CalculationError for a failed algorithm, or a context error.
	Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, index int, a, b string, opts Options) (string, error)

	// Name returns the registry name of the algorithm (e.g., "grid").
	Name() string
}

// coreMultiplier is a pure multiplication algorithm on parsed operands.
type coreMultiplier interface {
	MultiplyCore(ctx context.Context, reporter ProgressReporter, a, b fixed.Decimal, opts Options) (fixed.Decimal, error)
	Name() string
}

// DecimalMultiplier wraps a coreMultiplier with operand parsing, tracing,
// metrics, debug logging and panic recovery.
type DecimalMultiplier struct {
	core coreMultiplier
}

// NewMultiplier wraps core. It panics if core is nil.
func NewMultiplier(core coreMultiplier) Multiplier {
	if core == nil {
		panic("multiply: the coreMultiplier implementation cannot be nil")
	}
	return &DecimalMultiplier{core: core}
}

// Name returns the name of the wrapped algorithm.
func (m *DecimalMultiplier) Name() string {
	return m.core.Name()
}

// Multiply parses both operands, runs the wrapped algorithm and renders the
// product. A panic raised by the algorithm is returned as a CalculationError.
func (m *DecimalMultiplier) Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, index int, a, b string, opts Options) (product string, err error) {
	name := m.core.Name()
	ctx, span := otel.Tracer("multiply").Start(ctx, "Multiply",
		trace.WithAttributes(attribute.String("algorithm", name)))
	defer span.End()

	start := time.Now()
	status := "success"
	defer func() {
		duration := time.Since(start)
		switch {
		case errors.Is(err, ErrUnsupported):
			status = "skipped"
		case apperrors.IsContextError(err):
			status = "canceled"
		case err != nil:
			status = "error"
		}
		if err != nil && status != "skipped" {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		multiplicationsTotal.WithLabelValues(name, status).Inc()
		multiplicationDuration.WithLabelValues(name).Observe(duration.Seconds())

		log.Debug().
			Str("algo", name).
			Int("a_digits", len(a)).
			Int("b_digits", len(b)).
			Dur("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	reporter := func(float64) {}
	if progressChan != nil {
		sender := &progressSender{ctx: ctx, ch: progressChan, index: index}
		defer sender.stop()
		reporter = sender.send
	}

	x, err := fixed.Parse(a)
	if err != nil {
		return "", err
	}
	y, err := fixed.Parse(b)
	if err != nil {
		return "", err
	}
	operandDigits.Observe(float64(len(x.Mantissa())))
	operandDigits.Observe(float64(len(y.Mantissa())))
	span.SetAttributes(
		attribute.Int("a.digits", len(x.Mantissa())),
		attribute.Int("b.digits", len(y.Mantissa())),
	)

	reporter(0)
	result, err := m.run(ctx, reporter, x, y, opts)
	if err != nil {
		return "", err
	}
	reporter(1.0)
	return result.String(), nil
}

// progressSender forwards progress to a channel owned by the caller. After
// stop, sends are dropped: a cancelled core may still be running while the
// caller closes the channel.
type progressSender struct {
	mu      sync.Mutex
	stopped bool
	ctx     context.Context
	ch      chan<- ProgressUpdate
	index   int
}

func (s *progressSender) send(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.ctx.Err() != nil {
		return
	}
	select {
	case s.ch <- ProgressUpdate{Index: s.index, Value: p}:
	case <-s.ctx.Done():
	}
}

func (s *progressSender) stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

type outcome struct {
	product fixed.Decimal
	err     error
}

// run executes the core on its own goroutine so that a cancelled context
// returns immediately even while a long transform is still computing.
func (m *DecimalMultiplier) run(ctx context.Context, reporter ProgressReporter, x, y fixed.Decimal, opts Options) (fixed.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return fixed.Decimal{}, err
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: recovered(m.core.Name(), r)}
			}
		}()
		p, err := m.core.MultiplyCore(ctx, reporter, x, y, opts)
		if err != nil && !errors.Is(err, ErrUnsupported) && !apperrors.IsContextError(err) {
			err = apperrors.CalculationError{Algorithm: m.core.Name(), Cause: err}
		}
		done <- outcome{product: p, err: err}
	}()
	select {
	case o := <-done:
		return o.product, o.err
	case <-ctx.Done():
		return fixed.Decimal{}, ctx.Err()
	}
}

// recovered turns a panic value into a CalculationError.
func recovered(name string, r any) error {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("panic: %v", r)
	}
	return apperrors.CalculationError{Algorithm: name, Cause: cause}
}
