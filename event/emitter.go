package event

// Listener receives every event of a game, in order.
type Listener interface {
	OnEvent(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Emitter fans events out to its listeners in registration order.
type Emitter struct {
	listeners []Listener
}

func NewEmitter(listeners ...Listener) *Emitter {
	emitter := &Emitter{}
	for _, listener := range listeners {
		emitter.AddListener(listener)
	}
	return emitter
}

func (e *Emitter) AddListener(listener Listener) {
	if listener == nil {
		return
	}
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter) Emit(payload Event) {
	for _, listener := range e.listeners {
		listener.OnEvent(payload)
	}
}
