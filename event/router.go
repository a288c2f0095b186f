package event

// Handler consumes intents routed by type
type Handler interface {
	// HandleIntent processes a single intent, it must not block the tick loop
	HandleIntent(in Intent)

	// IntentTypes returns the intent types this handler processes
	IntentTypes() []IntentType
}

// HandlerFunc adapts a function to a single-type Handler
type HandlerFunc struct {
	Types []IntentType
	Fn    func(Intent)
}

func (h HandlerFunc) HandleIntent(in Intent) { h.Fn(in) }

func (h HandlerFunc) IntentTypes() []IntentType { return h.Types }

// Router dispatches intents to registered handlers
//
// Single-threaded: Dispatch runs on the tick goroutine, handlers are called in registration order.
// A panicking handler is recovered and reported through OnPanic so a faulty sink cannot fail the tick.
type Router struct {
	handlers map[IntentType][]Handler

	// OnPanic is called with the intent and recovered value, nil drops the report
	OnPanic func(Intent, any)
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[IntentType][]Handler),
	}
}

// Register adds a handler for its declared intent types
// The zero Router is ready to use
func (r *Router) Register(h Handler) {
	if r.handlers == nil {
		r.handlers = make(map[IntentType][]Handler)
	}
	for _, t := range h.IntentTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch routes intents in FIFO order
func (r *Router) Dispatch(intents []Intent) {
	for _, in := range intents {
		for _, h := range r.handlers[in.Type] {
			r.deliver(h, in)
		}
	}
}

func (r *Router) deliver(h Handler, in Intent) {
	defer func() {
		if rec := recover(); rec != nil && r.OnPanic != nil {
			r.OnPanic(in, rec)
		}
	}()
	h.HandleIntent(in)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t IntentType) int {
	return len(r.handlers[t])
}
