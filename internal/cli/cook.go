package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mughesh03/aromatone/internal/presentation/tui"
	"github.com/mughesh03/aromatone/pkg/cooking"
	"github.com/mughesh03/aromatone/pkg/domain"
)

// CookOptions configures a terminal cooking session.
type CookOptions struct {
	Mood   string
	Render tui.Renderer
	// Now is the clock of the session timer. Defaults to time.Now.
	Now func() time.Time
}

// Cook walks through the instructions of a recipe and returns the time spent.
// Enter moves on, b goes back, q stops early.
func Cook(ctx context.Context, in io.Reader, out io.Writer, r domain.Recipe, opts CookOptions) (time.Duration, error) {
	sess, err := cooking.NewSession(r)
	if err != nil {
		return 0, err
	}
	render := opts.Render
	if render == nil {
		render = tui.PlainRenderer
	}
	if md, err := render(tui.RecipeMarkdown(r)); err == nil {
		fmt.Fprintln(out, md)
	}
	if opts.Mood != "" {
		amb := cooking.AmbienceFor(opts.Mood)
		fmt.Fprintf(out, "Ambience: %s (%s)\n\n", amb.Mood, amb.AudioURL)
	}

	timer := cooking.NewRecorder(opts.Now)
	timer.Start()
	prompt := NewPrompter(in, out)

	total := len(r.Steps)
	for {
		fmt.Fprintf(out, "Step %d of %d (%.0f%%)\n  %s\n", sess.Index()+1, total, sess.Progress(), sess.Current())
		action := "next"
		if sess.Done() {
			action = "finish"
		}
		answer, err := prompt.Ask(ctx, fmt.Sprintf("[Enter] %s, [b]ack, [q]uit > ", action))
		if err != nil {
			return timer.Stop(), err
		}
		switch strings.ToLower(answer) {
		case "b", "back":
			sess.Prev()
		case "q", "quit":
			return timer.Stop(), ErrQuit
		default:
			if sess.Done() {
				elapsed := timer.Stop()
				fmt.Fprintf(out, "Enjoy your %s! Cooked in %s.\n", r.Title, cooking.FormatElapsed(elapsed))
				return elapsed, nil
			}
			sess.Next()
		}
	}
}
