package util

// Filter returns a new slice holding the elements of s that satisfy keep, in order.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Partition splits s into the elements that satisfy pred and those that don't.
// Both results keep the original order and never alias s.
func Partition[T any](s []T, pred func(T) bool) (yes, no []T) {
	yes = make([]T, 0, len(s))
	no = make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}
	return yes, no
}

func AnyTrue(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}

func BoolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
