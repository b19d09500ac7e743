package observations

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownPreset   = errors.New("unknown preset observation")
	ErrDialogClosed    = errors.New("dialog is not open")
	ErrNothingSelected = errors.New("nothing selected")
)
