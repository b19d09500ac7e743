package observations

// ConfirmFunc receives the confirmed observation text (trimmed) and whether
// it came from the free-text field rather than a preset.
type ConfirmFunc func(text string, isCustom bool)

// Picker is the server-side model of the observation dialog: a Selection
// plus the callback invoked on confirmation. State resets every time the
// dialog opens.
type Picker struct {
	selection Selection
	open      bool
	onConfirm ConfirmFunc
}

// NewPicker constructs a Picker with the given confirmation callback.
func NewPicker(onConfirm ConfirmFunc) *Picker {
	return &Picker{onConfirm: onConfirm}
}

// Open transitions the dialog to open, resetting any prior selection.
func (p *Picker) Open() {
	p.selection.Clear()
	p.open = true
}

// Close transitions the dialog to closed without confirming.
func (p *Picker) Close() {
	p.open = false
}

// IsOpen reports whether the dialog is open.
func (p *Picker) IsOpen() bool {
	return p.open
}

// SelectPreset chooses one of the preset observations.
func (p *Picker) SelectPreset(value string) error {
	if !p.open {
		return ErrDialogClosed
	}
	return p.selection.SelectPreset(value)
}

// SetCustomText replaces the selection with free text.
func (p *Picker) SetCustomText(text string) error {
	if !p.open {
		return ErrDialogClosed
	}
	p.selection.SetCustomText(text)
	return nil
}

// Confirmable reports whether confirmation is currently allowed.
func (p *Picker) Confirmable() bool {
	return p.open && p.selection.Confirmable()
}

// Confirm invokes the callback with the current selection and closes the
// dialog. It fails when the dialog is closed or nothing is selected.
func (p *Picker) Confirm() error {
	if !p.open {
		return ErrDialogClosed
	}
	if !p.selection.Confirmable() {
		return ErrNothingSelected
	}
	text, isCustom := p.selection.Value()
	if p.onConfirm != nil {
		p.onConfirm(text, isCustom)
	}
	p.open = false
	return nil
}
