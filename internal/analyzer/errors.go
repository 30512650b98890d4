package analyzer

import "errors"

// ErrInvalidCharacter is returned when the candidate password contains a
// character outside every defined class. The caller decides whether to
// re-prompt (interactive mode) or to record the failure on the per-item
// report (batch mode).
var ErrInvalidCharacter = errors.New("password contains unsupported characters")
