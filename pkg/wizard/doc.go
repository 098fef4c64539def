/*
Package wizard implements the multi-step form engine behind every AromaTone
wizard (signup, recipe setup, recipe flow).

A wizard is a Definition: a fixed set of typed fields and an ordered list of
steps, each gated by a declarative rule table. Sessions move through the steps
only through explicit events dispatched to the Engine:

	set_field     replace a field value
	toggle_field  add or remove a value in a list field
	next          advance when the step rules hold; complete on the last step
	prev          go back one step, never gated

The Engine never mutates the session it is given. Every Dispatch returns a new
snapshot, and View renders a pure projection of {WizardState, FormData} for the
host UI. When the last step advances, the Completer receives a deep copy of the
form, so later changes cannot leak into data already handed off.
*/
package wizard
