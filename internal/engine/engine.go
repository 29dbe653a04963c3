// Package engine enforces the work-study business rules on top of the
// entity store and answers the derived queries the dashboards need.
//
// The engine, not the caller, assigns identifiers and dates. Mutators that
// address a record by id are silent no-ops when the id is unknown; they
// return false in that case so callers can tell without a fault.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"workstudy/internal/logger"
	"workstudy/internal/session"
	"workstudy/internal/state"
	"workstudy/internal/store"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "workstudy/internal/engine"

// Identifier prefixes per entity type.
const (
	prefixJob         = "job"
	prefixApplication = "app"
	prefixWorkLog     = "log"
	prefixFeedback    = "fb"
)

// IDGenerator returns a fresh identifier for the given entity prefix.
type IDGenerator func(prefix string) string

// UUIDGenerator produces ids of the form <prefix>-<uuid>.
func UUIDGenerator(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Service) { s.newID = gen }
}

// WithLogger sets the base logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// Service is the business rule engine.
type Service struct {
	// mu serializes mutations that read one collection and write another.
	mu      sync.Mutex
	state   *state.Store
	session *session.Session
	now     func() time.Time
	newID   IDGenerator
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics instruments
}

type instruments struct {
	jobsPosted           metric.Int64Counter
	applicationsCreated  metric.Int64Counter
	applicationsRejected metric.Int64Counter
	statusChanges        metric.Int64Counter
	workLogsSubmitted    metric.Int64Counter
	workLogsApproved     metric.Int64Counter
	hoursApproved        metric.Float64Counter
	feedbackAdded        metric.Int64Counter
}

// New creates an engine over st, scoped by sess.
func New(st *state.Store, sess *session.Session, opts ...Option) *Service {
	s := &Service{
		state:   st,
		session: sess,
		now:     time.Now,
		newID:   UUIDGenerator,
		logger:  logger.Discard(),
		tracer:  otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newInstruments(otel.Meter(instrumentationName), s.logger)
	return s
}

func newInstruments(m metric.Meter, log *slog.Logger) instruments {
	var errs []error
	counter := func(name, desc string) metric.Int64Counter {
		c, err := m.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			errs = append(errs, err)
		}
		return c
	}

	in := instruments{
		jobsPosted:           counter("swms.jobs.posted", "Jobs posted"),
		applicationsCreated:  counter("swms.applications.created", "Applications created"),
		applicationsRejected: counter("swms.applications.duplicate", "Apply attempts refused as duplicates"),
		statusChanges:        counter("swms.applications.status_changed", "Application status updates"),
		workLogsSubmitted:    counter("swms.worklogs.submitted", "Work logs submitted"),
		workLogsApproved:     counter("swms.worklogs.approved", "Work logs approved"),
		feedbackAdded:        counter("swms.feedback.added", "Feedback entries added"),
	}
	hours, err := m.Float64Counter("swms.hours.approved",
		metric.WithDescription("Hours approved"), metric.WithUnit("h"))
	if err != nil {
		errs = append(errs, err)
	}
	in.hoursApproved = hours

	for _, err := range errs {
		log.Warn("failed to register engine metric", "error", err)
	}
	return in
}

// today returns the current calendar date from the engine clock.
func (s *Service) today() store.Date {
	return store.DateOf(s.now())
}

// adminID is the identity credited on admin writes.
func (s *Service) adminID() string {
	if u, ok := s.session.Current(); ok && u.IsAdmin() {
		return u.ID
	}
	return store.DefaultAdminID
}

// Actor returns the active identity of the session the engine is scoped by.
func (s *Service) Actor() (store.User, bool) {
	return s.session.Current()
}

func (s *Service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span, *slog.Logger) {
	if u, ok := s.session.Current(); ok && logger.ActorFromContext(ctx) == "" {
		ctx = logger.WithActor(ctx, u.ID)
	}
	ctx, span := s.tracer.Start(ctx, "engine."+op, trace.WithAttributes(attrs...))
	return ctx, span, logger.FromContext(ctx, s.logger).With("op", op)
}

// add increments c when instrument registration succeeded.
func add(ctx context.Context, c metric.Int64Counter) {
	if c != nil {
		c.Add(ctx, 1)
	}
}
