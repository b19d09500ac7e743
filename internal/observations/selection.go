package observations

import "strings"

type selectionKind int

const (
	kindNone selectionKind = iota
	kindPreset
	kindCustom
)

// Selection is the dialog's single-choice state: nothing, one preset, or
// free text. Modeling it as one tagged value makes the mutual exclusion
// between presets and free text structural rather than enforced by
// clearing code.
type Selection struct {
	kind selectionKind
	text string
}

// SelectPreset replaces the selection with the given preset, discarding any
// free text. The value must be one of the preset catalog entries.
func (s *Selection) SelectPreset(value string) error {
	if !IsPreset(value) {
		return ErrUnknownPreset
	}
	s.kind = kindPreset
	s.text = value
	return nil
}

// SetCustomText replaces the selection with free text, discarding any
// preset choice. Text that trims to empty returns the selection to none.
func (s *Selection) SetCustomText(text string) {
	if strings.TrimSpace(text) == "" {
		s.Clear()
		return
	}
	s.kind = kindCustom
	s.text = text
}

// Clear returns the selection to none.
func (s *Selection) Clear() {
	s.kind = kindNone
	s.text = ""
}

// Confirmable reports whether the selection can be confirmed.
func (s *Selection) Confirmable() bool {
	return s.kind != kindNone
}

// Value returns the trimmed selection text and whether it came from free
// text. An empty selection returns ("", false).
func (s *Selection) Value() (text string, isCustom bool) {
	return strings.TrimSpace(s.text), s.kind == kindCustom
}
