package router

// Params holds the path parameters bound during route matching, in the
// order they appear in the pattern. Values are already coerced to the
// declared parameter types. The zero value is an empty, usable collection.
type Params struct {
	keys   []string
	raw    []string
	values []any
}

func (p *Params) add(key, raw string, val any) {
	p.keys = append(p.keys, key)
	p.raw = append(p.raw, raw)
	p.values = append(p.values, val)
}

// Len returns the number of bound parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in pattern order.
func (p Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the coerced value of the named parameter.
func (p Params) Get(key string) (any, bool) {
	for i, k := range p.keys {
		if k == key {
			return p.values[i], true
		}
	}
	return nil, false
}

// Raw returns the original path segment text of the named parameter,
// or the empty string if the parameter is not bound.
func (p Params) Raw(key string) string {
	for i, k := range p.keys {
		if k == key {
			return p.raw[i]
		}
	}
	return ""
}

// String returns the value of a string-typed parameter.
func (p Params) String(key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the value of an int-typed parameter.
func (p Params) Int(key string) (int64, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}

// Uint returns the value of a uint-typed parameter.
func (p Params) Uint(key string) (uint64, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(uint64)
	return n, ok
}

// Float returns the value of a float-typed parameter.
func (p Params) Float(key string) (float64, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
