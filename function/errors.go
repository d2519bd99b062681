// seehuhn.de/go/stylefunc - evaluate declarative style functions
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package function

import "fmt"

// InvalidFunctionError is returned when a function specification cannot be
// turned into an evaluator.
type InvalidFunctionError struct {
	Type    Type
	Field   string
	Message string
}

func (e *InvalidFunctionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("invalid function %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s function invalid %s: %s", e.Type, e.Field, e.Message)
}

func (e *InvalidFunctionError) Is(target error) bool {
	_, ok := target.(*InvalidFunctionError)
	return ok
}

// newInvalidFunctionError creates a new InvalidFunctionError.
func newInvalidFunctionError(tp Type, field, format string, args ...any) *InvalidFunctionError {
	return &InvalidFunctionError{
		Type:    tp,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// MalformedSpecError indicates that a raw function specification could not
// be read.
type MalformedSpecError struct {
	Field string
	Err   error
}

func (e *MalformedSpecError) Error() string {
	msg := "malformed function specification"
	if e.Field != "" {
		msg += " (field " + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedSpecError) Unwrap() error {
	return e.Err
}

func malformed(field, format string, args ...any) *MalformedSpecError {
	return &MalformedSpecError{
		Field: field,
		Err:   fmt.Errorf(format, args...),
	}
}
