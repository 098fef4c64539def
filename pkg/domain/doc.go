/*
Package domain contains the core models shared by every AromaTone component.

It defines the wizard form record, the sequencer state, persisted sessions,
recipes and the music platforms users can connect. The package has no I/O and
no dependencies outside the standard library.

# Key Entities

  - FormData: the flat record of user answers collected by a wizard.
  - WizardState: the current step and the derived progress indicator.
  - Session: a persisted wizard instance (state + form + status).
  - Recipe: a generated recipe shown to the user; immutable once produced.
  - Platform: a music platform variant (Spotify, YouTube or Other).
*/
package domain
