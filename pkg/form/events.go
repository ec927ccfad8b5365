package form

import "github.com/shashibeit/ui-theme-material/pkg/validator"

// InputCheckbox is the ChangeEvent type whose value is taken from Checked.
const InputCheckbox = "checkbox"

// ChangeEvent is an input change notification.
type ChangeEvent struct {
	Type    string
	Value   validator.Value
	Checked bool
}

// value extracts the field value: Checked for checkboxes, Value otherwise.
func (e ChangeEvent) value() validator.Value {
	if e.Type == InputCheckbox {
		return validator.Bool(e.Checked)
	}
	return e.Value
}

// DefaultPreventer is a submit event whose default behaviour can be suppressed.
type DefaultPreventer interface {
	PreventDefault()
}

// FieldProps is what an input needs to render and report back.
type FieldProps struct {
	Name     string
	Value    validator.Value
	OnChange func(ChangeEvent) error
	OnBlur   func() error
	Error    string
	Touched  bool
	Dirty    bool
}
