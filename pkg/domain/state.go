package domain

// WizardState is the sequencer position within a wizard.
// CurrentStep is 1-based and always within [1, TotalSteps].
type WizardState struct {
	CurrentStep int `json:"current_step"`
	TotalSteps  int `json:"total_steps"`
}

// NewWizardState creates a state positioned on the first step.
func NewWizardState(totalSteps int) WizardState {
	return WizardState{CurrentStep: 1, TotalSteps: totalSteps}
}

// Progress returns the completion percentage derived from the current step:
// 0 on the first step and 100 on the last. A single-step wizard reports 100.
func (s WizardState) Progress() float64 {
	if s.TotalSteps < 2 {
		return 100
	}
	return float64(s.CurrentStep-1) / float64(s.TotalSteps-1) * 100
}

// InBounds reports whether the current step lies within [1, TotalSteps].
func (s WizardState) InBounds() bool {
	return s.CurrentStep >= 1 && s.CurrentStep <= s.TotalSteps
}

// IsFirst reports whether the sequencer sits on the first step.
func (s WizardState) IsFirst() bool { return s.CurrentStep == 1 }

// IsLast reports whether the sequencer sits on the last step.
func (s WizardState) IsLast() bool { return s.CurrentStep == s.TotalSteps }
