// Package mock provides a scriptable payway.Transport for testing code that
// talks to the gateway without any network interaction.
package mock

import (
	"context"
	"encoding/json"
	"sync"

	"payway-go/payway"
)

// =====================================================
// MOCK TRANSPORT FOR TESTING
// =====================================================

// Call records one dispatched request.
type Call struct {
	Path   string
	Fields []payway.Field
}

// FieldValue returns the value of the named field, or "" when absent.
func (c Call) FieldValue(name string) string {
	for _, f := range c.Fields {
		if f.Name == name {
			if s, ok := f.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}

// HasField reports whether the named field was transmitted at all.
func (c Call) HasField(name string) bool {
	for _, f := range c.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

type result struct {
	resp *payway.Response
	err  error
}

// Transport is a payway.Transport double. Responses and errors are served
// from a FIFO queue; with an empty queue every request succeeds with a
// generic approval body. Safe for concurrent use.
type Transport struct {
	mu    sync.Mutex
	queue []result
	calls []Call
}

func NewTransport() *Transport {
	return &Transport{}
}

// EnqueueResponse scripts the next response.
func (t *Transport) EnqueueResponse(status int, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, result{resp: &payway.Response{StatusCode: status, Body: []byte(body)}})
}

// EnqueueJSON scripts the next response from any JSON-marshalable value.
func (t *Transport) EnqueueJSON(status int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic("mock: unmarshalable response body: " + err.Error())
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, result{resp: &payway.Response{StatusCode: status, Body: raw}})
}

// EnqueueError scripts the next dispatch failure.
func (t *Transport) EnqueueError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, result{err: err})
}

func (t *Transport) Send(_ context.Context, path string, fields []payway.Field) (*payway.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	recorded := make([]payway.Field, len(fields))
	copy(recorded, fields)
	t.calls = append(t.calls, Call{Path: path, Fields: recorded})

	if len(t.queue) == 0 {
		return &payway.Response{
			StatusCode: 200,
			Body:       []byte(`{"status": 0, "description": "success"}`),
		}, nil
	}
	next := t.queue[0]
	t.queue = t.queue[1:]
	return next.resp, next.err
}

// Calls returns all recorded requests in dispatch order.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// LastCall returns the most recent request, or a zero Call when none were
// made.
func (t *Transport) LastCall() Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.calls) == 0 {
		return Call{}
	}
	return t.calls[len(t.calls)-1]
}
