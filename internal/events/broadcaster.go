// Package events fans out topology and session events to subscribed clients.
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/model"
)

// ErrSlowConsumer indicates a subscriber was disconnected because its queue
// saturated. The producer is never blocked and no event is silently dropped
// for a healthy subscriber.
var ErrSlowConsumer = errors.New("slow consumer")

// DefaultQueueSize is the per-subscriber queue depth used when a caller
// passes a non-positive buffer size.
const DefaultQueueSize = 256

// Subscription is one client's ordered event feed for a single session.
type Subscription struct {
	id        string
	sessionID string

	ch   chan model.Event
	done chan struct{}

	mu  sync.Mutex
	err error
}

// Events returns the subscriber's queue. The channel is closed after
// Close or a slow-consumer disconnect.
func (s *Subscription) Events() <-chan model.Event { return s.ch }

// Done is closed when the subscription ends for any reason.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Err reports why the subscription ended; nil for a clean Close.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) finish(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
	close(s.done)
	close(s.ch)
}

// Broadcaster maintains one bounded output queue per connected client,
// regardless of which protocol the client arrived on. It implements
// topo.EventSink; Publish is non-blocking by construction.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[string]map[string]*Subscription // sessionID -> subID -> sub

	queueSize int
	log       logging.Logger

	onDelivered func(model.Event)
	onDropped   func(subscriber string)
}

// Option customises Broadcaster construction.
type Option func(*Broadcaster)

// WithQueueSize overrides the per-subscriber queue depth.
func WithQueueSize(n int) Option {
	return func(b *Broadcaster) {
		if n > 0 {
			b.queueSize = n
		}
	}
}

// WithDeliveryHooks attaches optional callbacks for metrics: delivered is
// invoked once per enqueued event per subscriber, dropped once per
// slow-consumer disconnect.
func WithDeliveryHooks(delivered func(model.Event), dropped func(subscriber string)) Option {
	return func(b *Broadcaster) {
		b.onDelivered = delivered
		b.onDropped = dropped
	}
}

// New constructs an empty Broadcaster. log may be nil.
func New(log logging.Logger, opts ...Option) *Broadcaster {
	if log == nil {
		log = logging.Noop()
	}
	b := &Broadcaster{
		subs:      make(map[string]map[string]*Subscription),
		queueSize: DefaultQueueSize,
		log:       log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Subscribe registers a new subscriber for the given session's events.
func (b *Broadcaster) Subscribe(sessionID string) *Subscription {
	sub := &Subscription{
		id:        uuid.NewString(),
		sessionID: sessionID,
		ch:        make(chan model.Event, b.queueSize),
		done:      make(chan struct{}),
	}

	b.mu.Lock()
	bySub, ok := b.subs[sessionID]
	if !ok {
		bySub = make(map[string]*Subscription)
		b.subs[sessionID] = bySub
	}
	bySub[sub.id] = sub
	b.mu.Unlock()

	b.log.Debug(context.Background(), "subscriber attached",
		logging.String("session_id", sessionID),
		logging.String("subscriber_id", sub.id),
		logging.Int("total", len(bySub)),
	)
	return sub
}

// Unsubscribe detaches a subscription cleanly. It is safe to call after a
// slow-consumer disconnect.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	if b.detach(sub) {
		sub.finish(nil)
	}
}

// detach removes the subscription from the registry, reporting whether it
// was still present.
func (b *Broadcaster) detach(sub *Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	bySub, ok := b.subs[sub.sessionID]
	if !ok {
		return false
	}
	if _, ok := bySub[sub.id]; !ok {
		return false
	}
	delete(bySub, sub.id)
	if len(bySub) == 0 {
		delete(b.subs, sub.sessionID)
	}
	return true
}

// Publish enqueues the event to every subscriber of its session. A
// subscriber whose queue is full is disconnected with ErrSlowConsumer
// rather than blocking the producer.
//
// Publish is invoked with the Topology Store lock held, which is what
// guarantees per-subscriber revision ordering; it must stay non-blocking.
func (b *Broadcaster) Publish(ev model.Event) {
	b.mu.Lock()
	var slow []*Subscription
	for _, sub := range b.subs[ev.SessionID] {
		select {
		case sub.ch <- ev:
			if b.onDelivered != nil {
				b.onDelivered(ev)
			}
		default:
			slow = append(slow, sub)
		}
	}
	for _, sub := range slow {
		delete(b.subs[ev.SessionID], sub.id)
	}
	if len(b.subs[ev.SessionID]) == 0 {
		delete(b.subs, ev.SessionID)
	}
	b.mu.Unlock()

	for _, sub := range slow {
		sub.finish(ErrSlowConsumer)
		if b.onDropped != nil {
			b.onDropped(sub.id)
		}
		b.log.Warn(context.Background(), "disconnected slow consumer",
			logging.String("session_id", ev.SessionID),
			logging.String("subscriber_id", sub.id),
			logging.Uint64("revision", ev.Revision),
		)
	}
}

// SubscriberCount reports the number of live subscribers for a session.
func (b *Broadcaster) SubscriberCount(sessionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[sessionID])
}

// CloseSession detaches every subscriber of a session, used when the
// session is destroyed.
func (b *Broadcaster) CloseSession(sessionID string) {
	b.mu.Lock()
	bySub := b.subs[sessionID]
	delete(b.subs, sessionID)
	b.mu.Unlock()

	for _, sub := range bySub {
		sub.finish(nil)
	}
}
