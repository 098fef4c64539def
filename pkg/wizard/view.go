package wizard

import "github.com/mughesh03/aromatone/pkg/domain"

// MarkerState is the indicator state of one step in a progress bar.
type MarkerState string

const (
	MarkerCompleted MarkerState = "completed"
	MarkerActive    MarkerState = "active"
	MarkerUpcoming  MarkerState = "upcoming"
)

// Marker is one dot of the step indicator.
type Marker struct {
	Step  int         `json:"step"`
	ID    string      `json:"id"`
	Title string      `json:"title"`
	State MarkerState `json:"state"`
}

// FieldView is a field as shown on the current step.
type FieldView struct {
	Name    string      `json:"name"`
	Kind    domain.Kind `json:"kind"`
	Label   string      `json:"label,omitempty"`
	Value   any         `json:"value"`
	Options []string    `json:"options,omitempty"`
	Secret  bool        `json:"secret,omitempty"`
}

// View is the render model of a session: everything a client needs to draw
// the current step.
type View struct {
	SessionID   string      `json:"session_id"`
	Variant     string      `json:"variant"`
	Title       string      `json:"title"`
	Step        int         `json:"step"`
	TotalSteps  int         `json:"total_steps"`
	StepID      string      `json:"step_id"`
	StepTitle   string      `json:"step_title"`
	Description string      `json:"description,omitempty"`
	Progress    float64     `json:"progress"`
	Fields      []FieldView `json:"fields"`
	CanAdvance  bool        `json:"can_advance"`
	CanGoBack   bool        `json:"can_go_back"`
	IsLast      bool        `json:"is_last"`
	Unmet       []string    `json:"unmet,omitempty"`
	Completed   bool        `json:"completed"`
	Markers     []Marker    `json:"markers"`
}

// Render builds the view of sess. It reads but never mutates the session.
func Render(def *Definition, sess *domain.Session) View {
	state := sess.State
	state.TotalSteps = def.TotalSteps()

	v := View{
		SessionID:  sess.ID,
		Variant:    def.Variant,
		Title:      def.Title,
		Step:       state.CurrentStep,
		TotalSteps: state.TotalSteps,
		Progress:   state.Progress(),
		CanGoBack:  !state.IsFirst() && !sess.Completed(),
		IsLast:     state.IsLast(),
		Completed:  sess.Completed(),
		Fields:     []FieldView{},
	}

	if step, ok := def.Step(state.CurrentStep); ok {
		v.StepID = step.ID
		v.StepTitle = step.Title
		v.Description = step.Description
		for _, name := range step.Fields {
			f, ok := def.Field(name)
			if !ok {
				continue
			}
			fv := FieldView{
				Name:    f.Name,
				Kind:    f.Kind,
				Label:   f.Label,
				Value:   sess.Form[f.Name],
				Options: f.Options,
				Secret:  f.Secret,
			}
			if f.Secret && !sess.Form.IsEmpty(f.Name) {
				fv.Value = redacted
			}
			v.Fields = append(v.Fields, fv)
		}
	}

	unmet := def.Unmet(state.CurrentStep, sess.Form)
	v.CanAdvance = len(unmet) == 0 && !sess.Completed()
	for _, r := range unmet {
		v.Unmet = append(v.Unmet, r.Describe())
	}

	for i, s := range def.Steps {
		n := i + 1
		m := Marker{Step: n, ID: s.ID, Title: s.Title, State: MarkerUpcoming}
		switch {
		case n < state.CurrentStep || sess.Completed():
			m.State = MarkerCompleted
		case n == state.CurrentStep:
			m.State = MarkerActive
		}
		v.Markers = append(v.Markers, m)
	}
	return v
}
