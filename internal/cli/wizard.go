// Package cli runs wizards and cooking sessions interactively in a terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mughesh03/aromatone/internal/logging"
	"github.com/mughesh03/aromatone/internal/presentation/tui"
	"github.com/mughesh03/aromatone/pkg/domain"
	"github.com/mughesh03/aromatone/pkg/ports"
	"github.com/mughesh03/aromatone/pkg/session"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// WizardRunner drives a wizard from terminal answers: it asks for each field
// of the current step, then for the navigation command.
type WizardRunner struct {
	engine   ports.WizardEngine
	sessions *session.Manager
	prompt   *Prompter
	out      io.Writer
	render   tui.Renderer
	logger   *slog.Logger
}

// WizardOption configures a WizardRunner.
type WizardOption func(*WizardRunner)

// WithSessions persists the session after every event so a run can be resumed.
func WithSessions(m *session.Manager) WizardOption {
	return func(r *WizardRunner) {
		r.sessions = m
	}
}

// WithRenderer sets the markdown renderer. Defaults to plain text.
func WithRenderer(render tui.Renderer) WizardOption {
	return func(r *WizardRunner) {
		r.render = render
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) WizardOption {
	return func(r *WizardRunner) {
		r.logger = l
	}
}

// NewWizardRunner creates a runner reading from in and writing to out.
func NewWizardRunner(engine ports.WizardEngine, in io.Reader, out io.Writer, opts ...WizardOption) *WizardRunner {
	r := &WizardRunner{
		engine: engine,
		prompt: NewPrompter(in, out),
		out:    out,
		render: tui.PlainRenderer,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts (or, with sessions and a known sessionID, resumes) a wizard and
// returns its result once completed.
func (r *WizardRunner) Run(ctx context.Context, variant, sessionID string) (*wizard.Result, error) {
	sess, err := r.open(ctx, variant, sessionID)
	if err != nil {
		return nil, err
	}
	def, err := r.engine.Registry().Get(sess.Variant)
	if err != nil {
		return nil, err
	}

	for {
		view := wizard.Render(def, sess)
		r.show(tui.StepMarkdown(view))

		if sess, err = r.fill(ctx, def, sess); err != nil {
			return nil, err
		}

		ev, err := r.command(ctx, wizard.Render(def, sess))
		if err != nil {
			return nil, err
		}
		next, outcome, err := r.engine.Dispatch(ctx, sess, ev)
		if err != nil {
			return nil, err
		}
		sess = next

		switch outcome.Kind {
		case wizard.OutcomeBlocked:
			for _, rule := range outcome.Unmet {
				fmt.Fprintf(r.out, "  ! %s\n", rule.Describe())
			}
		case wizard.OutcomeCompleted:
			r.forget(ctx, sess.ID)
			return outcome.Result, nil
		}
		r.persist(ctx, sess)
	}
}

func (r *WizardRunner) open(ctx context.Context, variant, sessionID string) (*domain.Session, error) {
	if r.sessions != nil && sessionID != "" {
		sess, err := r.sessions.Load(ctx, sessionID)
		switch {
		case err == nil:
			if sess.Variant != variant {
				return nil, fmt.Errorf("session %s belongs to wizard %q", sessionID, sess.Variant)
			}
			fmt.Fprintf(r.out, ">>> Resuming session '%s' at step %d.\n", sessionID, sess.State.CurrentStep)
			return sess, nil
		case !errors.Is(err, domain.ErrSessionNotFound):
			return nil, err
		}
	}
	sess, err := r.engine.Start(ctx, variant, sessionID)
	if err != nil {
		return nil, err
	}
	if r.sessions != nil {
		fmt.Fprintf(r.out, ">>> Session '%s' started.\n", sess.ID)
	}
	r.persist(ctx, sess)
	return sess, nil
}

func (r *WizardRunner) persist(ctx context.Context, sess *domain.Session) {
	if r.sessions == nil {
		return
	}
	if err := r.sessions.Save(ctx, sess); err != nil {
		r.logger.Warn("session save failed", "session_id", sess.ID, "err", err)
	}
}

func (r *WizardRunner) forget(ctx context.Context, id string) {
	if r.sessions == nil {
		return
	}
	if err := r.sessions.Delete(ctx, id); err != nil {
		r.logger.Warn("session delete failed", "session_id", id, "err", err)
	}
}

func (r *WizardRunner) show(markdown string) {
	out, err := r.render(markdown)
	if err != nil {
		out = markdown
	}
	fmt.Fprintln(r.out, out)
}

// fill asks for every field of the current step. An empty answer keeps the
// current value; invalid answers are asked again.
func (r *WizardRunner) fill(ctx context.Context, def *wizard.Definition, sess *domain.Session) (*domain.Session, error) {
	step, _ := def.Step(sess.State.CurrentStep)
	for _, name := range step.Fields {
		field, _ := def.Field(name)
		for {
			answer, err := r.ask(ctx, field, sess.Form[name])
			if err != nil {
				return nil, err
			}
			if answer == "" {
				break
			}
			value, err := parseAnswer(field.Kind, answer)
			if err == nil {
				var next *domain.Session
				next, _, err = r.engine.Dispatch(ctx, sess, wizard.SetField(name, value))
				if err == nil {
					sess = next
					break
				}
			}
			fmt.Fprintf(r.out, "  ! %v\n", err)
		}
	}
	return sess, nil
}

func (r *WizardRunner) ask(ctx context.Context, f wizard.Field, current any) (string, error) {
	label := f.Label
	if label == "" {
		label = f.Name
	}
	hint := ""
	switch f.Kind {
	case domain.KindBool:
		hint = " (y/n)"
	case domain.KindList:
		hint = " (comma separated)"
	}
	if f.Secret {
		return r.prompt.AskSecret(ctx, fmt.Sprintf("%s%s: ", label, hint))
	}
	if cur := display(current); cur != "" {
		return r.prompt.Ask(ctx, fmt.Sprintf("%s%s [%s]: ", label, hint, cur))
	}
	return r.prompt.Ask(ctx, fmt.Sprintf("%s%s: ", label, hint))
}

func (r *WizardRunner) command(ctx context.Context, v wizard.View) (wizard.Event, error) {
	action := "next"
	if v.IsLast {
		action = "finish"
	}
	prompt := fmt.Sprintf("[Enter] %s", action)
	if v.CanGoBack {
		prompt += ", [b]ack"
	}
	prompt += ", [q]uit > "
	for {
		answer, err := r.prompt.Ask(ctx, prompt)
		if err != nil {
			return wizard.Event{}, err
		}
		switch strings.ToLower(answer) {
		case "", "n", "next":
			return wizard.Next(), nil
		case "b", "back":
			return wizard.Prev(), nil
		case "q", "quit":
			return wizard.Event{}, ErrQuit
		}
	}
}

func parseAnswer(kind domain.Kind, s string) (any, error) {
	switch kind {
	case domain.KindBool:
		switch strings.ToLower(s) {
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		}
		return nil, fmt.Errorf("answer y or n")
	case domain.KindNumber:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return n, nil
	case domain.KindList:
		if s == "-" {
			return []string{}, nil
		}
		var list []string
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
		return list, nil
	}
	return s, nil
}

func display(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "y"
		}
		return ""
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		return strings.Join(val, ", ")
	}
	return ""
}
