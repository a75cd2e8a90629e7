package assert

import "github.com/oomph-ac/ogeom/oerror"

// IsTrue panics with an OError built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// InRange panics if index is not in [0, n).
func InRange(index, n int, what string) {
	IsTrue(index >= 0 && index < n, "%s index %d out of range [0, %d)", what, index, n)
}
