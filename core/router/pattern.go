package router

import (
	"fmt"
	"strings"
)

// ParamType identifies the coercion applied to a variable path segment.
// The set of types is closed; see coerce.go for the coercion functions.
type ParamType string

const (
	// TypeString matches any non-empty segment and keeps it as a string.
	// This is the default when a variable declares no type.
	TypeString ParamType = "string"

	// TypeInt matches segments that parse as a signed 64-bit integer.
	TypeInt ParamType = "int"

	// TypeUint matches segments that parse as an unsigned 64-bit integer.
	TypeUint ParamType = "uint"

	// TypeFloat matches segments that parse as a 64-bit float.
	TypeFloat ParamType = "float"
)

// Segment is a single component of a compiled route pattern: either a
// literal that must match exactly, or a named variable with a declared type.
type Segment struct {
	// Literal is the exact text to match. Empty for variable segments.
	Literal string

	// Name is the variable name. Empty for literal segments.
	Name string

	// Type is the declared coercion type for variable segments.
	Type ParamType

	// Variable reports whether this segment binds a path parameter.
	Variable bool
}

// Pattern is a compiled route path template. Patterns are built once at
// registration time and never mutated afterwards, so they are safe for
// concurrent matching.
type Pattern struct {
	template string
	segments []Segment
}

// CompilePattern parses a path template into a Pattern.
//
// Templates are split on "/". A segment wrapped in braces declares a
// variable; an optional ":type" suffix selects the coercion type:
//
//	/hello/{name}
//	/items/{id:int}
//	/files/{bucket}/{size:float}
//
// The template must start with "/", contain no empty segments, and use
// each variable name at most once.
func CompilePattern(template string) (Pattern, error) {
	if template == "" || template[0] != '/' {
		return Pattern{}, fmt.Errorf("%w: %q must start with '/'", ErrInvalidPattern, template)
	}

	// Root template compiles to zero segments.
	if template == "/" {
		return Pattern{template: template}, nil
	}

	parts := strings.Split(template[1:], "/")
	segments := make([]Segment, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		if part == "" {
			return Pattern{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPattern, template)
		}

		seg, err := parseSegment(part)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w in %q", err, template)
		}

		if seg.Variable {
			if _, dup := seen[seg.Name]; dup {
				return Pattern{}, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, seg.Name, template)
			}
			seen[seg.Name] = struct{}{}
		}

		segments = append(segments, seg)
	}

	return Pattern{template: template, segments: segments}, nil
}

// parseSegment classifies one path component as a literal or a variable.
func parseSegment(part string) (Segment, error) {
	if part[0] != '{' {
		if strings.ContainsAny(part, "{}") {
			return Segment{}, fmt.Errorf("%w: unbalanced braces in segment %q", ErrInvalidPattern, part)
		}
		return Segment{Literal: part}, nil
	}

	if part[len(part)-1] != '}' || strings.ContainsAny(part[1:len(part)-1], "{}") {
		return Segment{}, fmt.Errorf("%w: unbalanced braces in segment %q", ErrInvalidPattern, part)
	}

	name, typ := part[1:len(part)-1], TypeString
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		name, typ = name[:idx], ParamType(name[idx+1:])
	}

	if name == "" {
		return Segment{}, fmt.Errorf("%w: segment %q has no parameter name", ErrInvalidPattern, part)
	}
	if _, ok := coercions[typ]; !ok {
		return Segment{}, fmt.Errorf("%w: %q in segment %q", ErrUnknownParamType, typ, part)
	}

	return Segment{Name: name, Type: typ, Variable: true}, nil
}

// String returns the original path template.
func (p Pattern) String() string {
	return p.template
}

// Segments returns the compiled literal/variable structure of the pattern.
// The returned slice is a copy and may be modified freely.
func (p Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Match attempts to match a concrete request path against the pattern,
// returning the bound parameters with coerced values. A failed coercion is
// a non-match, not an error.
func (p Pattern) Match(path string) (Params, bool) {
	parts, ok := splitPath(path)
	if !ok {
		return Params{}, false
	}
	return p.matchSegments(parts)
}

func (p Pattern) matchSegments(parts []string) (Params, bool) {
	if len(parts) != len(p.segments) {
		return Params{}, false
	}

	var params Params
	for i, seg := range p.segments {
		part := parts[i]
		if !seg.Variable {
			if seg.Literal != part {
				return Params{}, false
			}
			continue
		}
		if part == "" {
			return Params{}, false
		}
		val, ok := coercions[seg.Type](part)
		if !ok {
			return Params{}, false
		}
		params.add(seg.Name, part, val)
	}
	return params, true
}

// shape returns a canonical form of the pattern with variable names erased,
// used to detect duplicate registrations. Two patterns with the same shape
// would shadow each other during matching.
func (p Pattern) shape() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		if seg.Variable {
			b.WriteByte('{')
			b.WriteString(string(seg.Type))
			b.WriteByte('}')
		} else {
			b.WriteString(seg.Literal)
		}
	}
	return b.String()
}

// splitPath splits a rooted request path into segments. The root path "/"
// yields zero segments. Paths not starting with "/" never match.
func splitPath(path string) ([]string, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}
	if path == "/" {
		return nil, true
	}
	return strings.Split(path[1:], "/"), true
}
