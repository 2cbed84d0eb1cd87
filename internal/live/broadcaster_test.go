package live

import "testing"

func TestBroadcaster_PublishReachesSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1, cancel1 := b.Subscribe("AAAA1111")
	ch2, cancel2 := b.Subscribe("AAAA1111")
	defer cancel1()
	defer cancel2()

	b.Publish("AAAA1111", []byte("snapshot"))
	for i, ch := range []<-chan []byte{ch1, ch2} {
		select {
		case got := <-ch:
			if string(got) != "snapshot" {
				t.Fatalf("subscriber %d got %q", i, got)
			}
		default:
			t.Fatalf("subscriber %d received nothing", i)
		}
	}
}

func TestBroadcaster_CodesAreIsolated(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe("BBBB2222")
	defer cancel()

	b.Publish("AAAA1111", []byte("other"))
	select {
	case got := <-ch:
		t.Fatalf("unexpected delivery: %q", got)
	default:
	}
}

func TestBroadcaster_CancelClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe("AAAA1111")
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("expected a closed channel after cancel")
	}
	// publishing after cancel must not panic
	b.Publish("AAAA1111", []byte("late"))
	// cancel is idempotent
	cancel()
}

func TestBroadcaster_SlowSubscriberIsSkipped(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe("AAAA1111")
	defer cancel()

	for i := 0; i < 20; i++ {
		b.Publish("AAAA1111", []byte("snapshot"))
	}
	// the buffer holds 8; the rest were dropped, not blocked on
	count := 0
	for {
		select {
		case <-ch:
			count++
			continue
		default:
		}
		break
	}
	if count != 8 {
		t.Fatalf("expected 8 buffered snapshots, got %d", count)
	}
}
