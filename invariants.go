package runemap

import "fmt"

// CheckInvariants validates the internal inversion list:
//   - storage lengths agree and 2 <= length <= capacity
//   - transitions start at 0, end at MaxCodePoint+1 and strictly ascend
//   - no two adjacent runs hold equal values
//   - the sentinel entry is unset
//   - binary search agrees with a linear scan at every boundary
//
// A non-nil error wraps ErrInvariantViolation and always indicates a bug.
func (m *Map[V]) CheckInvariants() error {
	if m.length < 2 || m.length > len(m.transitions) || len(m.transitions) != len(m.values) {
		return &InvariantError{
			Reason: fmt.Sprintf("lengths bad: length=%d transitions=%d values=%d",
				m.length, len(m.transitions), len(m.values)),
			Index: -1,
		}
	}
	if m.transitions[0] != 0 || m.transitions[m.length-1] != codeSpaceLimit {
		return &InvariantError{Reason: "bounds set wrong", Index: -1}
	}
	if m.values[m.length-1].ok {
		return &InvariantError{Reason: "sentinel holds a value", Index: m.length - 1}
	}
	for i := 1; i < m.length; i++ {
		if m.transitions[i-1] >= m.transitions[i] {
			return &InvariantError{
				Reason: fmt.Sprintf("not monotonic: %s >= %s",
					hex(m.transitions[i-1]), hex(m.transitions[i])),
				Index: i,
			}
		}
	}
	for i := 1; i < m.length-1; i++ {
		if m.equal(m.values[i-1], m.values[i]) {
			return &InvariantError{
				Reason: fmt.Sprintf("values shared: <%v> at %s and <%v> at %s",
					m.values[i-1].value, hex(m.transitions[i-1]),
					m.values[i].value, hex(m.transitions[i])),
				Index: i,
			}
		}
	}
	for i := 0; i < m.length-1; i++ {
		for _, c := range [2]rune{m.transitions[i], m.transitions[i+1] - 1} {
			if got, want := m.findIndex(c), m.findIndexLinear(c); got != want {
				return &InvariantError{
					Reason: fmt.Sprintf("binary search: %s found %d, should be %d", hex(c), got, want),
					Index:  i,
				}
			}
		}
	}
	return nil
}

// findIndexLinear is the reference for findIndex. Only CheckInvariants uses it.
func (m *Map[V]) findIndexLinear(c rune) int {
	for i := m.length - 2; i > 0; i-- {
		if m.transitions[i] <= c {
			return i
		}
	}
	return 0
}
