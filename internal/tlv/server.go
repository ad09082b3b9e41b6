package tlv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/internal/session"
)

// Server speaks the legacy framed protocol over TCP. Every request is
// translated into the same session manager calls the gRPC surface uses, so
// both front-ends observe identical semantics over shared sessions.
type Server struct {
	sessions *session.Manager
	log      logging.Logger

	mu     sync.Mutex
	ln     net.Listener
	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewServer returns a Server driving the given session manager.
func NewServer(sessions *session.Manager, log logging.Logger) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		sessions: sessions,
		log:      log,
		conns:    make(map[net.Conn]struct{}),
	}
}

// Serve accepts connections on ln until Close is called. It always returns a
// non-nil error; after Close the error wraps net.ErrClosed.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return net.ErrClosed
	}
	s.ln = ln
	s.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return net.ErrClosed
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		go func() {
			defer s.wg.Done()
			s.ServeConn(context.Background(), conn)
			s.mu.Lock()
			delete(s.conns, conn)
			s.mu.Unlock()
		}()
	}
}

// Close stops the accept loop, closes every live connection and waits for
// their handlers to drain.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	ln := s.ln
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}
	s.wg.Wait()
	return err
}

// conn is the per-connection state: a write lock serialising replies with
// pushed events, and the connection's live subscriptions.
type conn struct {
	srv *Server
	rw  net.Conn
	log logging.Logger

	writeMu sync.Mutex
	subMu   sync.Mutex
	subs    map[string]*events.Subscription
	subWG   sync.WaitGroup
}

// ServeConn handles one connection until it closes. It is exported so tests
// can drive the protocol over an in-memory pipe.
func (s *Server) ServeConn(ctx context.Context, rw net.Conn) {
	c := &conn{
		srv:  s,
		rw:   rw,
		log:  s.log.With(logging.String("remote", rw.RemoteAddr().String())),
		subs: make(map[string]*events.Subscription),
	}
	defer c.shutdown()

	c.log.Debug(ctx, "tlv connection open")
	for {
		f, err := ReadFrame(rw)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				c.log.Warn(ctx, "tlv read failed", logging.Err(err))
			}
			return
		}
		reply, err := c.dispatch(ctx, f)
		if err != nil {
			reply = errorFrame(f.Type, err)
		}
		if werr := c.writeFrame(reply); werr != nil {
			c.log.Warn(ctx, "tlv write failed", logging.Err(werr))
			return
		}
	}
}

func (c *conn) shutdown() {
	c.subMu.Lock()
	for _, sub := range c.subs {
		c.srv.sessions.Unsubscribe(sub)
	}
	c.subs = nil
	c.subMu.Unlock()
	c.rw.Close()
	c.subWG.Wait()
}

func (c *conn) writeFrame(f Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return WriteFrame(c.rw, f)
}

func errorFrame(reqType uint16, err error) Frame {
	fs := Fields{}.
		AddUint16(TagRequestType, reqType).
		AddUint16(TagErrorCode, ErrorCode(err)).
		AddString(TagErrorMessage, err.Error())
	enc, _ := fs.Encode()
	return Frame{Type: MsgError, Value: enc}
}

func mustFrame(t uint16, fs Fields) (Frame, error) {
	enc, err := fs.Encode()
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: t, Value: enc}, nil
}

func ackFrame(reqType uint16) (Frame, error) {
	return mustFrame(MsgAck, Fields{}.AddUint16(TagRequestType, reqType))
}

func (c *conn) dispatch(ctx context.Context, f Frame) (Frame, error) {
	fs, err := ParseFields(f.Value)
	if err != nil {
		return Frame{}, err
	}
	switch f.Type {
	case MsgSessionCreate:
		id, _ := fs.String(TagSessionID)
		info, err := c.srv.sessions.Create(ctx, id)
		if err != nil {
			return Frame{}, err
		}
		return mustFrame(MsgSessionInfo, encodeSessionInfo(info))
	case MsgSessionGet:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		return mustFrame(MsgSessionInfo, encodeSessionInfo(sess.Info()))
	case MsgSessionList:
		out := Fields{}
		for _, info := range c.srv.sessions.List() {
			out = out.AddNested(TagSession, encodeSessionInfo(info))
		}
		return mustFrame(MsgSessionListResp, out)
	case MsgSessionStart:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		if err := sess.Start(ctx); err != nil {
			return Frame{}, err
		}
		return mustFrame(MsgSessionInfo, encodeSessionInfo(sess.Info()))
	case MsgSessionStop:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		if err := sess.Stop(ctx); err != nil {
			return Frame{}, err
		}
		return mustFrame(MsgSessionInfo, encodeSessionInfo(sess.Info()))
	case MsgSessionDelete:
		id, _ := fs.String(TagSessionID)
		if err := c.srv.sessions.Destroy(ctx, id); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgNodeAdd:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		n, err := decodeNode(fs)
		if err != nil {
			return Frame{}, err
		}
		if err := sess.AddNode(ctx, n); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgNodeUpdate:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		id, ok := fs.String(TagNodeID)
		if !ok {
			return Frame{}, fmt.Errorf("%w: missing node id", ErrMalformed)
		}
		if err := sess.UpdateNode(ctx, id, decodeNodeConfig(fs)); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgNodeRemove:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		id, ok := fs.String(TagNodeID)
		if !ok {
			return Frame{}, fmt.Errorf("%w: missing node id", ErrMalformed)
		}
		if err := sess.RemoveNode(ctx, id); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgLinkAdd:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		l, err := decodeLink(fs)
		if err != nil {
			return Frame{}, err
		}
		if err := sess.AddLink(ctx, l); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgLinkUpdate:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		id, ok := fs.String(TagLinkID)
		if !ok {
			return Frame{}, fmt.Errorf("%w: missing link id", ErrMalformed)
		}
		if err := sess.UpdateLink(ctx, id, decodeShaping(fs)); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgLinkRemove:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		id, ok := fs.String(TagLinkID)
		if !ok {
			return Frame{}, fmt.Errorf("%w: missing link id", ErrMalformed)
		}
		if err := sess.RemoveLink(ctx, id); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	case MsgSnapshot:
		sess, err := c.session(fs)
		if err != nil {
			return Frame{}, err
		}
		return mustFrame(MsgSnapshotResp, encodeSnapshot(sess.Phase(), sess.Snapshot()))
	case MsgSubscribe:
		if err := c.subscribe(ctx, fs); err != nil {
			return Frame{}, err
		}
		return ackFrame(f.Type)
	default:
		return Frame{}, fmt.Errorf("%w: unknown message type 0x%04x", ErrMalformed, f.Type)
	}
}

func (c *conn) session(fs Fields) (*session.Session, error) {
	id, ok := fs.String(TagSessionID)
	if !ok {
		return nil, fmt.Errorf("%w: missing session id", ErrMalformed)
	}
	return c.srv.sessions.Get(id)
}

// subscribe attaches an event forwarder for the session to this connection.
// Pushed MsgEvent frames interleave with request replies under the write
// lock, preserving per-session revision order.
func (c *conn) subscribe(ctx context.Context, fs Fields) error {
	id, ok := fs.String(TagSessionID)
	if !ok {
		return fmt.Errorf("%w: missing session id", ErrMalformed)
	}
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if c.subs == nil {
		return fmt.Errorf("%w: connection closing", session.ErrInvalidState)
	}
	if _, dup := c.subs[id]; dup {
		return fmt.Errorf("%w: already subscribed to session %q", session.ErrConflict, id)
	}
	sub, err := c.srv.sessions.Subscribe(id)
	if err != nil {
		return err
	}
	c.subs[id] = sub
	c.subWG.Add(1)
	go c.forward(ctx, id, sub)
	return nil
}

func (c *conn) forward(ctx context.Context, id string, sub *events.Subscription) {
	defer c.subWG.Done()
	for ev := range sub.Events() {
		frame, err := mustFrame(MsgEvent, encodeEvent(ev))
		if err != nil {
			c.log.Warn(ctx, "event encode failed", logging.Err(err))
			continue
		}
		if err := c.writeFrame(frame); err != nil {
			c.srv.sessions.Unsubscribe(sub)
			return
		}
	}
	// The broadcaster closed the stream: either the session ended or this
	// subscriber fell behind and was cut off.
	if err := sub.Err(); err != nil {
		c.log.Warn(ctx, "subscription terminated",
			logging.String("session_id", id), logging.Err(err))
		c.writeFrame(errorFrame(MsgSubscribe, fmt.Errorf("%w: session %q", err, id)))
	}
	c.subMu.Lock()
	if c.subs != nil {
		delete(c.subs, id)
	}
	c.subMu.Unlock()
}
