package resolve

// Accessor is one candidate source for a money value. The bool result
// distinguishes "defined, possibly zero" from "not present here".
type Accessor func() (float64, bool)

// FirstDefined tries candidates in order and returns the first defined
// value. When every candidate comes up empty the result is 0: an
// unresolved price is a degradation, never a failure.
func FirstDefined(candidates ...Accessor) float64 {
	v, _ := FirstDefinedOK(candidates...)

	return v
}

// FirstDefinedOK is FirstDefined plus a flag telling the caller whether
// any candidate actually resolved, so degradations can be logged.
func FirstDefinedOK(candidates ...Accessor) (float64, bool) {
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}

		if v, ok := candidate(); ok {
			return v, true
		}
	}

	return 0, false
}
