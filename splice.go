package runemap

// insertGapAt opens count entries at index. The entries in the gap are
// undefined and must be written by the caller.
//
// Storage grows to growthGap + newLength*growthPercent/100 when the current
// capacity is exceeded, which keeps repeated insertion amortized O(1) in
// allocations.
func (m *Map[V]) insertGapAt(index, count int) {
	newLength := m.length + count
	oldTransitions, oldValues := m.transitions, m.values
	if newLength > len(m.transitions) {
		allocation := growthGap + newLength*growthPercent/100
		m.transitions = make([]rune, allocation)
		m.values = make([]entry[V], allocation)
		copy(m.transitions[:index], oldTransitions[:index])
		copy(m.values[:index], oldValues[:index])
		m.opts.metricsCollector.RecordGrow(len(oldTransitions), allocation)
		m.opts.logger.LogGrow(len(oldTransitions), allocation, newLength)
	}
	copy(m.transitions[index+count:newLength], oldTransitions[index:m.length])
	copy(m.values[index+count:newLength], oldValues[index:m.length])
	m.length = newLength
	m.opts.metricsCollector.RecordSplice(count, 0)
}

// removeAt drops the entries index through index+count-1. Capacity is kept;
// freed value slots are cleared so they do not pin old values.
func (m *Map[V]) removeAt(index, count int) {
	copy(m.transitions[index:], m.transitions[index+count:m.length])
	copy(m.values[index:], m.values[index+count:m.length])
	newLength := m.length - count
	clear(m.transitions[newLength:m.length])
	clear(m.values[newLength:m.length])
	m.length = newLength
	m.opts.metricsCollector.RecordSplice(0, count)
}

// capacity reports the number of entries the backing storage can hold.
func (m *Map[V]) capacity() int {
	return len(m.transitions)
}
