// Package events keeps the ordered log of structured turn results and
// dispatches each appended record to observers. Single pass: observers
// cannot append.
package events

import "github.com/nathoo/ecohero/types"

// Observer receives every event after it is appended.
type Observer func(types.Event)

// Log is an append-only event sequence.
type Log struct {
	events    []types.Event
	observers []Observer
}

// NewLog creates a log with optional observers.
func NewLog(observers ...Observer) *Log {
	return &Log{observers: observers}
}

// Subscribe adds an observer for subsequent events.
func (l *Log) Subscribe(o Observer) {
	l.observers = append(l.observers, o)
}

// Append assigns the next sequence number, stores the event and notifies observers.
// Returns the stored event.
func (l *Log) Append(ev types.Event) types.Event {
	ev.Seq = len(l.events) + 1
	l.events = append(l.events, ev)
	for _, o := range l.observers {
		o(ev)
	}
	return ev
}

// AppendAll appends events in order and returns the stored copies.
func (l *Log) AppendAll(evs []types.Event) []types.Event {
	out := make([]types.Event, 0, len(evs))
	for _, ev := range evs {
		out = append(out, l.Append(ev))
	}
	return out
}

// Events returns a copy of every event.
func (l *Log) Events() []types.Event {
	out := make([]types.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Since returns events with Seq greater than seq.
func (l *Log) Since(seq int) []types.Event {
	if seq < 0 {
		seq = 0
	}
	if seq >= len(l.events) {
		return nil
	}
	out := make([]types.Event, len(l.events)-seq)
	copy(out, l.events[seq:])
	return out
}

// Len returns the number of events.
func (l *Log) Len() int {
	return len(l.events)
}

// Filter returns the events whose kind is one of kinds.
func Filter(evs []types.Event, kinds ...types.EventKind) []types.Event {
	want := make(map[types.EventKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []types.Event
	for _, ev := range evs {
		if want[ev.Kind] {
			out = append(out, ev)
		}
	}
	return out
}
