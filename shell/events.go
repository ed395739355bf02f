package shell

const (
	EventCorrected   string = "corrected"
	EventParityError string = "parity-error"
)

// Events fans decoder events out to subscribers. Sends never block: a
// subscriber whose channel is full misses the event.
type Events struct {
	eventMap map[string][]chan string
}

func NewEvents() *Events {
	return &Events{
		eventMap: make(map[string][]chan string),
	}
}

func (e *Events) Emit(event string, msg string) {
	for _, ch := range e.eventMap[event] {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (e *Events) Subscribe(event string, ch chan string) {
	e.eventMap[event] = append(e.eventMap[event], ch)
}
