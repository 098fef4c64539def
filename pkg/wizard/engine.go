package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/schema"
)

// OutcomeKind classifies what a dispatched event did.
type OutcomeKind string

const (
	OutcomeUpdated   OutcomeKind = "updated"
	OutcomeAdvanced  OutcomeKind = "advanced"
	OutcomeRetreated OutcomeKind = "retreated"
	OutcomeBlocked   OutcomeKind = "blocked"
	OutcomeCompleted OutcomeKind = "completed"
	OutcomeNoop      OutcomeKind = "noop"
)

// Outcome describes the effect of one event.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	// Animation is set when the current step changed.
	Animation *Animation `json:"animation,omitempty"`
	// Unmet lists the failing rules of a blocked advance.
	Unmet []Rule `json:"unmet,omitempty"`
	// Result is set when the wizard completed.
	Result *Result `json:"result,omitempty"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithCompleter sets the terminal action run when a wizard finishes.
func WithCompleter(c Completer) Option {
	return func(e *Engine) {
		e.completer = c
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.WizardHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides the session ID generator (default: UUIDv4).
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		e.newID = gen
	}
}

// Engine applies wizard events to session snapshots. It holds no session
// state of its own: every call takes a session and returns a new one.
type Engine struct {
	registry  *Registry
	completer Completer
	hooks     domain.WizardHooks
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewEngine creates an engine over the definitions in reg.
func NewEngine(reg *Registry, opts ...Option) *Engine {
	e := &Engine{
		registry:  reg,
		completer: nopCompleter{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.completer == nil {
		e.completer = nopCompleter{}
	}
	return e
}

// Registry exposes the definitions known to the engine.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Start creates a fresh session of variant on its first step.
// An empty sessionID is replaced by a generated one.
func (e *Engine) Start(ctx context.Context, variant, sessionID string) (*domain.Session, error) {
	def, err := e.registry.Get(variant)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = e.newID()
	}
	sess := domain.NewSession(sessionID, variant, def.TotalSteps(), def.NewForm(), e.now().UTC())
	e.logger.DebugContext(ctx, "wizard started", "session_id", sess.ID, "variant", variant)
	e.emit(ctx, e.hooks.OnStepEnter, domain.EventStepEnter, def, sess)
	return sess, nil
}

// Definition returns the definition backing a session.
func (e *Engine) Definition(sess *domain.Session) (*Definition, error) {
	return e.registry.Get(sess.Variant)
}

// Dispatch applies ev to sess and returns the resulting snapshot. sess is
// never modified. Blocked advances are reported through the outcome, not as errors.
func (e *Engine) Dispatch(ctx context.Context, sess *domain.Session, ev Event) (*domain.Session, Outcome, error) {
	if sess == nil {
		return nil, Outcome{}, domain.ErrSessionNotFound
	}
	if sess.Completed() {
		return nil, Outcome{}, domain.ErrSessionCompleted
	}
	def, err := e.registry.Get(sess.Variant)
	if err != nil {
		return nil, Outcome{}, err
	}

	next := sess.Snapshot()
	if next.Form == nil {
		next.Form = def.NewForm()
	}
	next.State.TotalSteps = def.TotalSteps()

	switch ev.Type {
	case EventSetField:
		return e.setField(def, next, ev)
	case EventToggleField:
		return e.toggleField(def, next, ev)
	case EventNext:
		return e.advance(ctx, def, next)
	case EventPrev:
		return e.retreat(ctx, def, next)
	default:
		return nil, Outcome{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

func (e *Engine) setField(def *Definition, sess *domain.Session, ev Event) (*domain.Session, Outcome, error) {
	field, ok := def.Field(ev.Field)
	if !ok {
		return nil, Outcome{}, fmt.Errorf("%w: %s", domain.ErrUnknownField, ev.Field)
	}

	value, err := domain.NormalizeValue(ev.Value)
	if err != nil {
		return nil, Outcome{}, fmt.Errorf("%w: %s: %v", domain.ErrFieldKind, field.Name, err)
	}
	if value == nil {
		value = field.Kind.Zero()
	}
	if err := schema.ValidateValue(def.Schema(), field.Name, value); err != nil {
		return nil, Outcome{}, fmt.Errorf("%w: %v", domain.ErrFieldKind, err)
	}

	NewFieldStore(sess.Form).Set(field.Name, value)
	sess.UpdatedAt = e.now().UTC()
	return sess, Outcome{Kind: OutcomeUpdated}, nil
}

func (e *Engine) toggleField(def *Definition, sess *domain.Session, ev Event) (*domain.Session, Outcome, error) {
	field, ok := def.Field(ev.Field)
	if !ok {
		return nil, Outcome{}, fmt.Errorf("%w: %s", domain.ErrUnknownField, ev.Field)
	}
	if field.Kind != domain.KindList {
		return nil, Outcome{}, fmt.Errorf("%w: %s is %s", domain.ErrNotAList, field.Name, field.Kind)
	}
	value, ok := ev.Value.(string)
	if !ok {
		return nil, Outcome{}, fmt.Errorf("%w: %s: toggle value must be a string, got %T", domain.ErrFieldKind, field.Name, ev.Value)
	}

	NewFieldStore(sess.Form).Toggle(field.Name, value)
	sess.UpdatedAt = e.now().UTC()
	return sess, Outcome{Kind: OutcomeUpdated}, nil
}

func (e *Engine) advance(ctx context.Context, def *Definition, sess *domain.Session) (*domain.Session, Outcome, error) {
	step := sess.State.CurrentStep
	if unmet := def.Unmet(step, sess.Form); len(unmet) > 0 {
		e.logger.DebugContext(ctx, "advance blocked", "session_id", sess.ID, "step", step, "unmet", len(unmet))
		e.emit(ctx, e.hooks.OnBlocked, domain.EventBlocked, def, sess)
		return sess, Outcome{Kind: OutcomeBlocked, Unmet: unmet}, nil
	}

	now := e.now().UTC()
	if !sess.State.IsLast() {
		e.emit(ctx, e.hooks.OnStepLeave, domain.EventStepLeave, def, sess)
		sess.State.CurrentStep++
		sess.UpdatedAt = now
		anim := Present(step, sess.State.CurrentStep)
		e.emit(ctx, e.hooks.OnStepEnter, domain.EventStepEnter, def, sess)
		return sess, Outcome{Kind: OutcomeAdvanced, Animation: &anim}, nil
	}

	// The form may have been stored by an older definition or edited at rest.
	if err := schema.Validate(def.Schema(), sess.Form); err != nil {
		e.logger.WarnContext(ctx, "completion rejected", "session_id", sess.ID, "variant", def.Variant,
			"failures", len(schema.ValidationErrors(err)), "err", err)
		return nil, Outcome{}, fmt.Errorf("complete %s: %w", def.Variant, err)
	}

	res := &Result{
		SessionID:   sess.ID,
		Variant:     def.Variant,
		Data:        sess.Form.Clone(),
		Redirect:    def.Redirect,
		CompletedAt: now,
		secrets:     def.SecretFields(),
	}
	if err := e.completer.Complete(ctx, res); err != nil {
		e.logger.ErrorContext(ctx, "completion failed", "session_id", sess.ID, "variant", def.Variant, "err", err)
		return nil, Outcome{}, fmt.Errorf("complete %s: %w", def.Variant, err)
	}

	sess.Status = domain.StatusCompleted
	sess.UpdatedAt = now
	sess.CompletedAt = &now
	e.logger.InfoContext(ctx, "wizard completed", "session_id", sess.ID, "variant", def.Variant)
	e.emit(ctx, e.hooks.OnComplete, domain.EventComplete, def, sess)
	return sess, Outcome{Kind: OutcomeCompleted, Result: res}, nil
}

func (e *Engine) retreat(ctx context.Context, def *Definition, sess *domain.Session) (*domain.Session, Outcome, error) {
	step := sess.State.CurrentStep
	if sess.State.IsFirst() {
		return sess, Outcome{Kind: OutcomeNoop}, nil
	}
	e.emit(ctx, e.hooks.OnStepLeave, domain.EventStepLeave, def, sess)
	sess.State.CurrentStep--
	sess.UpdatedAt = e.now().UTC()
	anim := Present(step, sess.State.CurrentStep)
	e.emit(ctx, e.hooks.OnStepEnter, domain.EventStepEnter, def, sess)
	return sess, Outcome{Kind: OutcomeRetreated, Animation: &anim}, nil
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.StepEvent), typ domain.EventType, def *Definition, sess *domain.Session) {
	if hook == nil {
		return
	}
	ev := &domain.StepEvent{
		Timestamp: e.now().UTC(),
		Type:      typ,
		SessionID: sess.ID,
		Variant:   def.Variant,
		Step:      sess.State.CurrentStep,
	}
	if s, ok := def.Step(sess.State.CurrentStep); ok {
		ev.StepID = s.ID
	}
	hook(ctx, ev)
}
