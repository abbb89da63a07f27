package event

import "reflect"

type DummyListener struct {
	receivedPayloads []Event
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]Event, 0)}
}

func (l *DummyListener) ReceivedPayloads() []Event {
	return l.receivedPayloads
}

func (l *DummyListener) OnEvent(payload Event) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

// Count returns how many received payloads have the same type as sample.
func (l *DummyListener) Count(sample Event) int {
	count := 0
	for _, payload := range l.receivedPayloads {
		if sameType(payload, sample) {
			count++
		}
	}
	return count
}

// Last returns the most recent payload with the same type as sample.
func (l *DummyListener) Last(sample Event) (Event, bool) {
	for i := len(l.receivedPayloads) - 1; i >= 0; i-- {
		if sameType(l.receivedPayloads[i], sample) {
			return l.receivedPayloads[i], true
		}
	}
	return nil, false
}

func (l *DummyListener) Reset() {
	l.receivedPayloads = l.receivedPayloads[:0]
}

func sameType(a, b Event) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
