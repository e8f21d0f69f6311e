package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Field enumerates the contact form inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPhone
	FieldAge
	FieldPassword
)

// Fields lists every tracked field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldAge, FieldPassword}

var (
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s]{3,}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10,15}$`)
	passwordPattern = regexp.MustCompile(`^.{8,}$`)
)

const minAge = 18

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "phone"
	case FieldAge:
		return "age"
	case FieldPassword:
		return "password"
	}
	return "unknown"
}

// Valid applies the field's rule to a raw value. It never fails: anything that
// does not satisfy the rule is simply invalid.
func (f Field) Valid(value string) bool {
	switch f {
	case FieldName:
		return namePattern.MatchString(value)
	case FieldEmail:
		return emailPattern.MatchString(value)
	case FieldPhone:
		return phonePattern.MatchString(value)
	case FieldAge:
		return validAge(value)
	case FieldPassword:
		return passwordPattern.MatchString(value)
	}
	return false
}

// Hint describes the rule shown next to an invalid field.
func (f Field) Hint() string {
	switch f {
	case FieldName:
		return "letters and spaces, at least 3 characters"
	case FieldEmail:
		return "a valid email address"
	case FieldPhone:
		return "10 to 15 digits"
	case FieldAge:
		return "a number, 18 or older"
	case FieldPassword:
		return "at least 8 characters"
	}
	return ""
}

// validAge treats a blank value as zero and anything non-numeric as invalid.
func validAge(value string) bool {
	s := strings.TrimSpace(value)
	if s == "" {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) {
		return false
	}
	return n >= minAge
}
