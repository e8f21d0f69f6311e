// Package form holds the contact form validation state machine.
package form

// Mark is the validation state shown for a field.
type Mark int

const (
	Unmarked Mark = iota
	MarkValid
	MarkInvalid
)

// Form tracks raw values and validation marks for every field.
type Form struct {
	values        [5]string
	marks         [5]Mark
	submitEnabled bool
}

// New returns an empty form with submit disabled.
func New() *Form {
	return &Form{}
}

// Input records a new raw value for one field, revalidates only that field and
// recomputes whether submit is allowed.
func (f *Form) Input(field Field, value string) Mark {
	if !field.known() {
		return Unmarked
	}
	f.values[field] = value
	if field.Valid(value) {
		f.marks[field] = MarkValid
	} else {
		f.marks[field] = MarkInvalid
	}
	f.refreshSubmit()
	return f.marks[field]
}

// Value returns the raw value of a field.
func (f *Form) Value(field Field) string {
	if !field.known() {
		return ""
	}
	return f.values[field]
}

// Mark returns the current validation mark of a field.
func (f *Form) Mark(field Field) Mark {
	if !field.known() {
		return Unmarked
	}
	return f.marks[field]
}

// SubmitEnabled reports whether every field is currently marked valid.
func (f *Form) SubmitEnabled() bool {
	return f.submitEnabled
}

// Submit acknowledges the form locally. While submit is disabled nothing happens and
// false is returned. Otherwise all values and marks are cleared and submit is disabled
// again. Nothing is transmitted.
func (f *Form) Submit() bool {
	if !f.submitEnabled {
		return false
	}
	f.Reset()
	return true
}

// Reset clears all values and marks.
func (f *Form) Reset() {
	f.values = [5]string{}
	f.marks = [5]Mark{}
	f.submitEnabled = false
}

func (f *Form) refreshSubmit() {
	for _, m := range f.marks {
		if m != MarkValid {
			f.submitEnabled = false
			return
		}
	}
	f.submitEnabled = true
}

func (f Field) known() bool {
	return f >= FieldName && f <= FieldPassword
}
