// Package live fans battle state snapshots out to websocket watchers.
// Handlers publish a marshalled snapshot after every mutation; slow
// subscribers are skipped rather than blocking the publisher.
package live

import "sync"

type subscriberSet map[chan []byte]struct{}

// Broadcaster is an in-process publish/subscribe hub keyed by battle code.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[string]subscriberSet
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[string]subscriberSet)}
}

// Subscribe registers a watcher for the given battle code. The returned
// cancel func must be called when the watcher goes away; it closes the
// channel.
func (b *Broadcaster) Subscribe(code string) (<-chan []byte, func()) {
	ch := make(chan []byte, 8)
	b.mu.Lock()
	set, ok := b.subs[code]
	if !ok {
		set = make(subscriberSet)
		b.subs[code] = set
	}
	set[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[code]; ok {
			if _, present := set[ch]; present {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(b.subs, code)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the payload to every watcher of the battle code. A
// watcher whose buffer is full misses this snapshot; it will catch up on
// the next one.
func (b *Broadcaster) Publish(code string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[code] {
		select {
		case ch <- payload:
		default:
		}
	}
}
