package session

// Subscribe returns a channel receiving a snapshot after every change.
// Slow subscribers only see the latest snapshot. Call cancel to unsubscribe.
func (s *State) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// broadcastLocked вызывается под subMu
func (s *State) broadcastLocked(snap Snapshot) {
	for _, ch := range s.subs {
		// вытесняем устаревший снимок
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
