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

import (
	"errors"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/stylefunc"
)

// Read converts a raw function specification into an evaluator.
// This is equivalent to calling [Normalize] followed by [New].
func Read(raw any) (*Evaluator, error) {
	s, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return New(s)
}

// Decode parses a function specification given as YAML or JSON text.
// The result is normalized as described for [Normalize].
func Decode(data []byte) (*Spec, error) {
	var raw any
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, &MalformedSpecError{Err: err}
	}
	return Normalize(raw)
}

// IsFunctionSpec reports whether v describes a function, as opposed to a
// literal value.  This is the case for mappings which have either a
// "domain" and a "range" entry, or a "stops" list, and for [Spec] values
// with a table.
func IsFunctionSpec(v any) bool {
	switch v := v.(type) {
	case *Spec:
		return v != nil && v.hasTable()
	case Spec:
		return v.hasTable()
	case map[string]any:
		_, hasDomain := v["domain"]
		_, hasRange := v["range"]
		if hasDomain && hasRange {
			return true
		}
		stops, hasStops := v["stops"]
		if !hasStops {
			return false
		}
		_, err := toList("stops", stops)
		return err == nil
	}
	return false
}

// Normalize converts a raw function specification into canonical form.
//
// The following forms are accepted:
//   - A [Spec] or *Spec.  A copy is returned without modifications.
//   - A mapping with "domain" and "range" entries.  The lists are used
//     as given, together with the optional entries "type", "property",
//     "base" and "overflow".
//   - A mapping with a "stops" entry, holding a list of [key, value] pairs.
//     The pairs are split into Domain and Range.  If no type is given, or
//     the type is exponential, and some value cannot be interpolated, the
//     function is turned into an interval function.  For interval
//     functions the first key is dropped, since the first value applies to
//     all inputs below the second key.
//   - Any other value, including mappings without a table, gives a
//     constant function with this value.
func Normalize(raw any) (*Spec, error) {
	switch raw := raw.(type) {
	case *Spec:
		if raw == nil {
			return nil, &MalformedSpecError{Err: errors.New("nil specification")}
		}
		return raw.clone(), nil
	case Spec:
		return raw.clone(), nil
	case map[string]any:
		return normalizeMap(raw)
	}
	return &Spec{Type: TypeConstant, Value: raw}, nil
}

func normalizeMap(m map[string]any) (*Spec, error) {
	domain, hasDomain := m["domain"]
	rng, hasRange := m["range"]
	stops, hasStops := m["stops"]
	if !(hasDomain && hasRange) && !hasStops {
		return &Spec{Type: TypeConstant, Value: m}, nil
	}

	s := &Spec{}
	if v, ok := m["type"]; ok && v != nil {
		tp, ok := v.(string)
		if !ok {
			return nil, malformed("type", "expected a string, got %T", v)
		}
		s.Type = Type(tp)
	}
	if v, ok := m["property"]; ok && v != nil {
		name, ok := v.(string)
		if !ok {
			return nil, malformed("property", "expected a string, got %T", v)
		}
		s.Property = name
	}
	if v, ok := m["base"]; ok && v != nil {
		base, ok := toFloat(v)
		if !ok {
			return nil, malformed("base", "expected a number, got %T", v)
		}
		s.Base = base
	}
	if v, ok := m["overflow"]; ok && v != nil {
		overflow, ok := v.(bool)
		if !ok {
			return nil, malformed("overflow", "expected a boolean, got %T", v)
		}
		s.Overflow = overflow
	}

	var err error
	if hasDomain && hasRange {
		s.Domain, err = toList("domain", domain)
		if err != nil {
			return nil, err
		}
		s.Range, err = toList("range", rng)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	err = s.setStops(stops)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// setStops splits a list of [key, value] pairs into s.Domain and s.Range,
// and infers the function type.
func (s *Spec) setStops(raw any) error {
	stops, err := toList("stops", raw)
	if err != nil {
		return err
	}

	domain := make([]stylefunc.Value, 0, len(stops))
	rng := make([]stylefunc.Value, 0, len(stops))
	for i, stop := range stops {
		pair, err := toList("stops", stop)
		if err != nil || len(pair) < 2 {
			return malformed("stops", "stop %d is not a [key, value] pair", i)
		}
		domain = append(domain, pair[0])
		rng = append(rng, pair[1])
	}

	// Keys which combine zoom level and property value only make sense
	// when the function reads a record property.
	zoomed := false
	if s.Property != "" && !isGlobalName(s.Property) && len(domain) > 0 {
		keys := make([]stylefunc.Value, len(domain))
		zoomed = true
		for i, k := range domain {
			zk, ok := zoomKeyOf(k)
			if !ok {
				zoomed = false
				break
			}
			keys[i] = zk
		}
		if zoomed {
			domain = keys
		}
	}

	if s.Type == "" || s.Type == TypeExponential {
		for _, v := range rng {
			if !isInterpolatable(v) {
				s.Type = TypeInterval
				break
			}
		}
	}
	if s.Type == "" {
		s.Type = TypeExponential
	}

	if s.Type == TypeInterval && len(domain) > 0 && !zoomed {
		domain = domain[1:]
	}

	s.Domain = domain
	s.Range = rng
	return nil
}

// toList converts a Go slice or array to a []stylefunc.Value.
// Lists of type []any are copied, so that the result does not share
// memory with the caller's data.
func toList(field string, v any) ([]stylefunc.Value, error) {
	if list, ok := v.([]any); ok {
		return slices.Clone(list), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, malformed(field, "expected a list, got %T", v)
	}
	res := make([]stylefunc.Value, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, nil
}
