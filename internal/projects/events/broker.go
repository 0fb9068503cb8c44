package events

import (
	"sync"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
)

const clientBuffer = 8

// Broker fans store snapshots out to short-lived stream clients. The broker
// itself is subscribed to the store once; clients come and go through
// Register and Unregister.
type Broker struct {
	mu      sync.Mutex
	clients map[chan []domain.Project]struct{}
	closed  bool
}

// NewBroker creates a broker with no clients.
func NewBroker() *Broker {
	return &Broker{
		clients: make(map[chan []domain.Project]struct{}),
	}
}

// Register adds a client. The channel is closed by Unregister or Close.
func (b *Broker) Register() <-chan []domain.Project {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []domain.Project, clientBuffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.clients[ch] = struct{}{}
	return ch
}

// Unregister removes a client and closes its channel.
func (b *Broker) Unregister(ch <-chan []domain.Project) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for c := range b.clients {
		if c == ch {
			delete(b.clients, c)
			close(c)
			return
		}
	}
}

// Publish delivers snapshot to every client without blocking. Clients whose
// buffer is full miss this snapshot; the next one supersedes it anyway.
func (b *Broker) Publish(snapshot []domain.Project) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for c := range b.clients {
		select {
		case c <- snapshot:
		default:
		}
	}
}

// Clients returns the number of registered clients.
func (b *Broker) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Close disconnects every client. Later registrations get a closed channel.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for c := range b.clients {
		close(c)
		delete(b.clients, c)
	}
}
