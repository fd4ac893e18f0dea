package events

import (
	"github.com/aaronzipp/sus-math/internal/models"
)

// Event is a single notification published by the round engine
type Event struct {
	Name    string
	GameID  string
	Round   int
	Status  models.GameStatus
	Player  *models.Player   // subject of the event, if any
	Task    *models.Task     // turn-started and task-resolved only
	Correct bool             // task-resolved only
	Tasks   int              // global completed task count at publish time
	Alive   []*models.Player // voting-started only
}

// Listener receives published events
type Listener func(Event)

// Bus fans events out to listeners synchronously, in subscription order
type Bus struct {
	listeners []Listener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener
func (b *Bus) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Publish delivers ev to every listener before returning. A nil bus drops the event.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	for _, l := range b.listeners {
		l(ev)
	}
}
