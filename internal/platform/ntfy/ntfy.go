// Package ntfy subscribes to an ntfy push-notification topic and follows
// installation progress published by the instance itself.
//
// The instance publishes while it installs; the orchestrator only listens.
// This keeps the orchestrator from having to reach the instance before the
// instance is reachable. The transport is an open-ended HTTP response whose
// body is a sequence of newline-delimited JSON objects, with no
// acknowledgment, replay, or backpressure.
//
// Two timeout regimes apply: the first message must arrive within a bounded
// window (a silent channel means the installer never started), while the
// steady state has no per-event timeout at all (installs are legitimately
// silent for long stretches).
package ntfy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/llamaup/llamaup/internal/util/poll"
)

// ErrStreamClosed reports that the notification stream ended before a
// terminal marker was seen. The emitter disappeared mid-install.
var ErrStreamClosed = errors.New("notification stream closed before a terminal marker")

// eventMessage is the ntfy event type carrying a published message. Other
// event types (open, keepalive) originate from the relay, not the instance.
const eventMessage = "message"

// Event is one object on the subscription stream.
type Event struct {
	ID      string `json:"id"`
	Time    int64  `json:"time"`
	Event   string `json:"event"`
	Topic   string `json:"topic"`
	Message string `json:"message,omitempty"`
}

// IsMessage reports whether the event was published by the instance.
func (e *Event) IsMessage() bool { return e.Event == eventMessage }

// Client subscribes to topics on an ntfy server.
type Client struct {
	server     string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client. The client must not carry an
// overall request timeout: subscriptions are open-ended.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the given ntfy server base URL.
func NewClient(server string, opts ...ClientOption) *Client {
	c := &Client{
		server:     strings.TrimRight(server, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*Subscription)

// WithSince asks the relay to replay cached messages published at or after
// t. This closes the race between the instance starting to publish and the
// subscription being opened.
func WithSince(t time.Time) SubscribeOption {
	return func(s *Subscription) { s.since = t }
}

// Subscribe opens a streaming subscription to the topic. The subscription
// lives until ctx is cancelled, Close is called, or the relay drops the
// connection.
func (c *Client) Subscribe(ctx context.Context, topic string, opts ...SubscribeOption) (*Subscription, error) {
	s := &Subscription{client: c, topic: topic, ctx: ctx}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.connect(); err != nil {
		return nil, err
	}
	return s, nil
}

// Subscription is a live, single-consumer event stream for one topic.
// It is not safe for concurrent use.
type Subscription struct {
	client *Client
	topic  string
	ctx    context.Context
	since  time.Time

	events      chan Event
	cancelRead  context.CancelFunc
	reconnected bool
	err         error // sticky fatal result, set once
}

// connect opens (or reopens) the streaming request and starts the reader.
func (s *Subscription) connect() error {
	if s.cancelRead != nil {
		// Release the previous connection's read context before replacing it.
		s.cancelRead()
	}

	url := fmt.Sprintf("%s/%s/json", s.client.server, s.topic)
	if !s.since.IsZero() {
		url += fmt.Sprintf("?since=%d", s.since.Unix())
	}

	readCtx, cancel := context.WithCancel(s.ctx)
	req, err := http.NewRequestWithContext(readCtx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to build subscribe request: %w", err)
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		cancel()
		return fmt.Errorf("subscribe to %s returned status %d", url, resp.StatusCode)
	}

	events := make(chan Event)
	s.events = events
	s.cancelRead = cancel

	go func() {
		defer close(events)
		defer func() { _ = resp.Body.Close() }()

		dec := json.NewDecoder(resp.Body)
		for {
			var ev Event
			if err := dec.Decode(&ev); err != nil {
				// EOF, malformed tail, or cancelled read: either way the
				// stream is over from the consumer's perspective.
				return
			}
			select {
			case events <- ev:
			case <-readCtx.Done():
				return
			}
		}
	}()

	return nil
}

// advanceCursor moves the replay cursor up to the event's timestamp so a
// resubscribe replays from there. The cursor is inclusive: the event itself
// is re-delivered after a reconnect, because a gap event published in the
// same second would otherwise be lost, and the installer's terminal marker
// is published exactly once. Duplicates are harmless, marker matching is
// idempotent. Relay events never advance the cursor; only instance messages
// are replayed.
func (s *Subscription) advanceCursor(ev *Event) {
	if !ev.IsMessage() || ev.Time <= 0 {
		return
	}
	if t := time.Unix(ev.Time, 0); t.After(s.since) {
		s.since = t
	}
}

// Close tears down the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	if s.cancelRead != nil {
		s.cancelRead()
	}
}

// AwaitFirstEvent blocks until the instance publishes its first message
// event, the timeout elapses, or the stream ends.
//
// A timeout is fatal and sticky: once fired, every subsequent call returns
// the same error without re-arming the timer. Relay-origin events (open,
// keepalive) do not count as the instance speaking and are skipped.
func (s *Subscription) AwaitFirstEvent(timeout time.Duration) (*Event, error) {
	if s.err != nil {
		return nil, s.err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.err = fmt.Errorf("no installation progress received: %w", ErrStreamClosed)
				return nil, s.err
			}
			s.advanceCursor(&ev)
			if !ev.IsMessage() {
				continue
			}
			return &ev, nil
		case <-timer.C:
			s.err = &poll.TimeoutError{What: "first installation progress event", Timeout: timeout}
			s.Close()
			return nil, s.err
		case <-s.ctx.Done():
			s.err = s.ctx.Err()
			return nil, s.err
		}
	}
}

// ConsumeUntilTerminal reads events until one of the markers appears in a
// message, case-insensitively. There is no per-event timeout; the loop ends
// only on a terminal match, stream closure, or context cancellation.
//
// first, if non-nil, is checked before the stream is read further, so a
// terminal marker in the very first message wins immediately. progress, if
// non-nil, is invoked for every non-terminal message event.
//
// An unexpected stream closure is retried with a single resubscribe that
// replays from the cursor of the last consumed message, so events published
// in the gap (the one-shot terminal marker included) are re-delivered.
// Already-consumed events may come back too; the progress log repeats a
// line and marker matching does not care.
func (s *Subscription) ConsumeUntilTerminal(first *Event, markers []string, progress func(*Event)) (*Event, error) {
	if s.err != nil {
		return nil, s.err
	}

	if first != nil && first.IsMessage() {
		if matchesAny(first.Message, markers) {
			return first, nil
		}
		if progress != nil {
			progress(first)
		}
	}

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				if !s.reconnected {
					s.reconnected = true
					if err := s.connect(); err == nil {
						continue
					}
				}
				s.err = fmt.Errorf("installation did not reach a terminal marker: %w", ErrStreamClosed)
				return nil, s.err
			}
			s.advanceCursor(&ev)
			if !ev.IsMessage() {
				continue
			}
			if matchesAny(ev.Message, markers) {
				return &ev, nil
			}
			if progress != nil {
				progress(&ev)
			}
		case <-s.ctx.Done():
			s.err = s.ctx.Err()
			return nil, s.err
		}
	}
}

// matchesAny reports whether the message contains any marker,
// case-insensitively.
func matchesAny(message string, markers []string) bool {
	lower := strings.ToLower(message)
	for _, m := range markers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}
