package streaming

// Batched mode: visibility-enter events queue up and are served in batches
// of a fixed size, one batch in flight at a time. A member is complete once
// it has both loaded (or failed) and finished its fade; the batch unlocks
// only when every member is complete, and the next batch starts after a
// settle delay. Deliberate backpressure against scroll-triggered load storms.

type member struct {
	id     string
	loaded bool
	faded  bool
}

type batcher struct {
	size   int
	delay  float64 // settle delay, seconds
	settle float64 // countdown until the next batch may start
	queue  []string
	active []*member
}

func newBatcher(size int, delay float64) *batcher {
	if size <= 0 {
		size = 1
	}
	return &batcher{size: size, delay: delay}
}

func (b *batcher) enqueue(id string) {
	if b.inActiveBatch(id) || b.queued(id) {
		return
	}
	b.queue = append(b.queue, id)
}

// step advances the batch state machine by one tick: quorum check while a
// batch is active, settle countdown between batches, batch start otherwise.
func (b *batcher) step(m *Manager, dt float64) {
	if len(b.active) > 0 {
		for _, mem := range b.active {
			if !mem.loaded || !mem.faded {
				return
			}
		}
		// Quorum: every member complete. Unlock and settle.
		b.active = nil
		b.settle = b.delay
		return
	}

	if b.settle > 0 {
		b.settle -= dt
		if b.settle > 0 {
			return
		}
	}
	if len(b.queue) == 0 {
		return
	}

	n := b.size
	if n > len(b.queue) {
		n = len(b.queue)
	}
	for _, id := range b.queue[:n] {
		r := m.resources[id]
		if r == nil || r.state == Loaded || r.state == Loading {
			continue // no longer eligible by the time its batch started
		}
		b.active = append(b.active, &member{id: id})
		m.startLoad(r)
	}
	b.queue = append(b.queue[:0], b.queue[n:]...)
}

// markLoaded records a member's load completion. alsoFaded short-circuits the
// fade flag for failures and timeouts so they can never block the quorum.
func (b *batcher) markLoaded(id string, alsoFaded bool) {
	if mem := b.memberFor(id); mem != nil {
		mem.loaded = true
		if alsoFaded {
			mem.faded = true
		}
	}
}

func (b *batcher) markFaded(id string) {
	if mem := b.memberFor(id); mem != nil {
		mem.faded = true
	}
}

func (b *batcher) memberFor(id string) *member {
	for _, mem := range b.active {
		if mem.id == id {
			return mem
		}
	}
	return nil
}

func (b *batcher) inActiveBatch(id string) bool {
	return b.memberFor(id) != nil
}

func (b *batcher) queued(id string) bool {
	for _, q := range b.queue {
		if q == id {
			return true
		}
	}
	return false
}
