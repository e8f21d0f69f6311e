package form

import (
	"strings"
	"testing"
)

func TestFieldBoundaries(t *testing.T) {
	tests := []struct {
		field Field
		value string
		want  bool
	}{
		{FieldName, "Al", false},
		{FieldName, "Ada", true},
		{FieldName, "Ada Lovelace", true},
		{FieldName, "R2D2", false},
		{FieldEmail, "cook@example.com", true},
		{FieldEmail, "cook@example", false},
		{FieldEmail, "co ok@example.com", false},
		{FieldEmail, "@example.com", false},
		{FieldPhone, "123456789", false},
		{FieldPhone, "1234567890", true},
		{FieldPhone, strings.Repeat("1", 15), true},
		{FieldPhone, strings.Repeat("1", 16), false},
		{FieldPhone, "12345-67890", false},
		{FieldAge, "17", false},
		{FieldAge, "18", true},
		{FieldAge, " 42 ", true},
		{FieldAge, "18.5", true},
		{FieldAge, "", false},
		{FieldAge, "eighteen", false},
		{FieldAge, "NaN", false},
		{FieldPassword, "1234567", false},
		{FieldPassword, "12345678", true},
		{FieldPassword, "p@ss w0rd!", true},
	}

	for _, tt := range tests {
		if got := tt.field.Valid(tt.value); got != tt.want {
			t.Fatalf("%s(%q): expected %v, got %v", tt.field, tt.value, tt.want, got)
		}
	}
}

func fillValid(f *Form) {
	f.Input(FieldName, "Ada Lovelace")
	f.Input(FieldEmail, "ada@example.com")
	f.Input(FieldPhone, "5551234567")
	f.Input(FieldAge, "36")
	f.Input(FieldPassword, "analytical")
}

func TestSubmitEnabledOnlyWhenAllValid(t *testing.T) {
	f := New()
	if f.SubmitEnabled() {
		t.Fatalf("expected submit disabled on a fresh form")
	}

	f.Input(FieldName, "Ada Lovelace")
	f.Input(FieldEmail, "ada@example.com")
	f.Input(FieldPhone, "5551234567")
	f.Input(FieldAge, "36")
	if f.SubmitEnabled() {
		t.Fatalf("expected submit disabled with an untouched field")
	}

	f.Input(FieldPassword, "analytical")
	if !f.SubmitEnabled() {
		t.Fatalf("expected submit enabled with every field valid")
	}
}

func TestInvalidatingAnyFieldDisablesSubmit(t *testing.T) {
	bad := map[Field]string{
		FieldName:     "Al",
		FieldEmail:    "nope",
		FieldPhone:    "123",
		FieldAge:      "17",
		FieldPassword: "short",
	}
	for _, field := range Fields {
		f := New()
		fillValid(f)
		if mark := f.Input(field, bad[field]); mark != MarkInvalid {
			t.Fatalf("%s: expected invalid mark, got %v", field, mark)
		}
		if f.SubmitEnabled() {
			t.Fatalf("%s: expected submit disabled after invalid input", field)
		}
		if f.Submit() {
			t.Fatalf("%s: expected submit to be refused while disabled", field)
		}
		if f.Value(field) != bad[field] {
			t.Fatalf("%s: expected value kept after refused submit", field)
		}
	}
}

func TestInputRevalidatesOnlyThatField(t *testing.T) {
	f := New()
	f.Input(FieldName, "Al")
	f.Input(FieldEmail, "ada@example.com")
	if f.Mark(FieldName) != MarkInvalid {
		t.Fatalf("expected name still invalid")
	}
	if f.Mark(FieldPhone) != Unmarked {
		t.Fatalf("expected untouched phone unmarked, got %v", f.Mark(FieldPhone))
	}
}

func TestSubmitClearsForm(t *testing.T) {
	f := New()
	fillValid(f)
	if !f.Submit() {
		t.Fatalf("expected submit accepted")
	}
	for _, field := range Fields {
		if f.Value(field) != "" {
			t.Fatalf("%s: expected value cleared, got %q", field, f.Value(field))
		}
		if f.Mark(field) != Unmarked {
			t.Fatalf("%s: expected mark cleared, got %v", field, f.Mark(field))
		}
	}
	if f.SubmitEnabled() {
		t.Fatalf("expected submit disabled after submission")
	}
	if f.Submit() {
		t.Fatalf("expected a second submit to be refused")
	}
}

func TestUnknownFieldIsIgnored(t *testing.T) {
	f := New()
	if mark := f.Input(Field(42), "x"); mark != Unmarked {
		t.Fatalf("expected unknown field ignored, got %v", mark)
	}
}
