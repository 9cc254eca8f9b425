package router

import "strconv"

// coercions maps each declared parameter type to its coercion function.
// Coercions return (value, ok) instead of an error so that a failed
// coercion flows naturally into "try the next candidate route".
// All numeric types are 64 bits wide.
var coercions = map[ParamType]func(string) (any, bool){
	TypeString: func(s string) (any, bool) {
		return s, true
	},
	TypeInt: func(s string) (any, bool) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	},
	TypeUint: func(s string) (any, bool) {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	},
	TypeFloat: func(s string) (any, bool) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	},
}
