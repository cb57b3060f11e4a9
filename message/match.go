package message

// Shape matching treats a message as a fixed tuple of expected segment
// kinds: the test succeeds only when arity, order, and every kind line up
// exactly. It is a structural assertion over the whole chain, not a search.
//
// MatchShape checks kinds only. The generic MatchN functions additionally
// hand back the typed segments, so a command handler can destructure a
// message in one step:
//
//	if at, cmd, ok := message.Match2[message.At, message.Plain](m); ok {
//	    handle(at.Target, cmd.Text)
//	}

// MatchShape reports whether the message consists of exactly the given
// segment kinds, in order.
func (m Message) MatchShape(types ...SegmentType) bool {
	if len(m.chain) != len(types) {
		return false
	}
	for i, st := range types {
		if m.chain[i].Type() != st {
			return false
		}
	}
	return true
}

// Match1 matches a one-segment message of kind T0.
func Match1[T0 Segment](m Message) (T0, bool) {
	var s0 T0
	if len(m.chain) != 1 {
		return s0, false
	}
	s0, ok := m.chain[0].(T0)
	return s0, ok
}

// Match2 matches a two-segment message of kinds T0, T1 in order.
func Match2[T0, T1 Segment](m Message) (T0, T1, bool) {
	var (
		s0 T0
		s1 T1
	)
	if len(m.chain) != 2 {
		return s0, s1, false
	}
	s0, ok0 := m.chain[0].(T0)
	s1, ok1 := m.chain[1].(T1)
	return s0, s1, ok0 && ok1
}

// Match3 matches a three-segment message of kinds T0, T1, T2 in order.
func Match3[T0, T1, T2 Segment](m Message) (T0, T1, T2, bool) {
	var (
		s0 T0
		s1 T1
		s2 T2
	)
	if len(m.chain) != 3 {
		return s0, s1, s2, false
	}
	s0, ok0 := m.chain[0].(T0)
	s1, ok1 := m.chain[1].(T1)
	s2, ok2 := m.chain[2].(T2)
	return s0, s1, s2, ok0 && ok1 && ok2
}

// Match4 matches a four-segment message of kinds T0..T3 in order.
func Match4[T0, T1, T2, T3 Segment](m Message) (T0, T1, T2, T3, bool) {
	var (
		s0 T0
		s1 T1
		s2 T2
		s3 T3
	)
	if len(m.chain) != 4 {
		return s0, s1, s2, s3, false
	}
	s0, ok0 := m.chain[0].(T0)
	s1, ok1 := m.chain[1].(T1)
	s2, ok2 := m.chain[2].(T2)
	s3, ok3 := m.chain[3].(T3)
	return s0, s1, s2, s3, ok0 && ok1 && ok2 && ok3
}
