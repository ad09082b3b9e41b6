package events

import (
	"errors"
	"testing"
	"time"

	"github.com/packetforge/netemd/model"
)

func publishN(b *Broadcaster, sessionID string, n int) {
	for i := 1; i <= n; i++ {
		b.Publish(model.Event{
			Kind:      model.EventNodeAdded,
			SessionID: sessionID,
			Revision:  uint64(i),
		})
	}
}

func TestDeliveryInRevisionOrder(t *testing.T) {
	b := New(nil, WithQueueSize(64))
	sub := b.Subscribe("s1")
	defer b.Unsubscribe(sub)

	publishN(b, "s1", 10)

	var last uint64
	for i := 0; i < 10; i++ {
		select {
		case ev := <-sub.Events():
			if ev.Revision < last {
				t.Fatalf("revision order violated: %d after %d", ev.Revision, last)
			}
			last = ev.Revision
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestSessionIsolation(t *testing.T) {
	b := New(nil)
	s1 := b.Subscribe("s1")
	s2 := b.Subscribe("s2")
	defer b.Unsubscribe(s1)
	defer b.Unsubscribe(s2)

	publishN(b, "s1", 3)

	select {
	case ev := <-s2.Events():
		t.Fatalf("subscriber of s2 received event for %q", ev.SessionID)
	case <-time.After(50 * time.Millisecond):
	}
	if got := len(s1.Events()); got != 3 {
		t.Fatalf("s1 queue length = %d, want 3", got)
	}
}

func TestSlowConsumerDisconnected(t *testing.T) {
	b := New(nil, WithQueueSize(4))
	slow := b.Subscribe("s1")
	healthy := b.Subscribe("s1")
	defer b.Unsubscribe(healthy)

	// The healthy subscriber drains after every publish, so only the slow
	// one accumulates; its queue overflows on the fifth event.
	var last uint64
	for i := 1; i <= 5; i++ {
		b.Publish(model.Event{
			Kind:      model.EventNodeAdded,
			SessionID: "s1",
			Revision:  uint64(i),
		})
		select {
		case ev, ok := <-healthy.Events():
			if !ok {
				t.Fatal("healthy subscriber was disconnected")
			}
			if ev.Revision < last {
				t.Fatalf("revision order violated: %d after %d", ev.Revision, last)
			}
			last = ev.Revision
		case <-time.After(time.Second):
			t.Fatalf("healthy subscriber missing event %d", i)
		}
	}

	select {
	case <-slow.Done():
	case <-time.After(time.Second):
		t.Fatal("slow subscriber was not disconnected")
	}
	if !errors.Is(slow.Err(), ErrSlowConsumer) {
		t.Fatalf("slow.Err() = %v, want ErrSlowConsumer", slow.Err())
	}
}

func TestUnsubscribeAfterDisconnectIsSafe(t *testing.T) {
	b := New(nil, WithQueueSize(1))
	sub := b.Subscribe("s1")
	publishN(b, "s1", 2)

	<-sub.Done()
	b.Unsubscribe(sub) // must not panic or double-close
	if b.SubscriberCount("s1") != 0 {
		t.Fatalf("SubscriberCount = %d, want 0", b.SubscriberCount("s1"))
	}
}

func TestCloseSessionEndsSubscriptionsCleanly(t *testing.T) {
	b := New(nil)
	sub := b.Subscribe("s1")
	b.CloseSession("s1")

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}
	if sub.Err() != nil {
		t.Fatalf("clean close reported error %v", sub.Err())
	}
}
