package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultChannelPrefix  = "board:events:" // Pub/Sub channel prefix: board:events:{topic}
	DefaultPublishTimeout = 2 * time.Second
	EventProjectsUpdated  = "projects.updated"
	projectsTopic         = "projects"
	queueSize             = 32
)

// Event is the payload published after every board change.
type Event struct {
	Event       string           `json:"event"`
	Projects    []domain.Project `json:"projects"`
	PublishedAt time.Time        `json:"published_at"`
}

// RedisPublisher broadcasts store snapshots on a Redis Pub/Sub channel.
// Nothing is stored; subscribers that are not listening miss the event.
//
// Observe only enqueues. A single worker publishes in order, so a slow or
// unreachable Redis never holds up the store.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	timeout time.Duration
	now     func() time.Time

	queue    chan []domain.Project
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option configures a RedisPublisher.
type Option func(*RedisPublisher)

// WithPublishTimeout bounds each publish call. Non-positive values are ignored.
func WithPublishTimeout(d time.Duration) Option {
	return func(p *RedisPublisher) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewRedisPublisher creates a publisher and starts its worker. An empty
// prefix uses DefaultChannelPrefix. Call Stop to flush and release it.
func NewRedisPublisher(client *redis.Client, prefix string, opts ...Option) *RedisPublisher {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	p := &RedisPublisher{
		client:  client,
		channel: fmt.Sprintf("%s%s", prefix, projectsTopic),
		timeout: DefaultPublishTimeout,
		now:     time.Now,
		queue:   make(chan []domain.Project, queueSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(1)
	go p.run()
	return p
}

// Channel returns the channel events are published on.
func (p *RedisPublisher) Channel() string {
	return p.channel
}

// Observe is the store observer. It never blocks: when the queue is full
// or the publisher is stopped the snapshot is dropped.
func (p *RedisPublisher) Observe(snapshot []domain.Project) {
	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.queue <- snapshot:
	default:
		log.Printf("[redis] queue full, dropping snapshot for %s", p.channel)
	}
}

// Stop ends the worker after it publishes what is already queued.
func (p *RedisPublisher) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}

// Publish sends one event for snapshot.
func (p *RedisPublisher) Publish(ctx context.Context, snapshot []domain.Project) error {
	data, err := json.Marshal(Event{
		Event:       EventProjectsUpdated,
		Projects:    snapshot,
		PublishedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *RedisPublisher) run() {
	defer p.wg.Done()
	for {
		select {
		case snapshot := <-p.queue:
			p.send(snapshot)
		case <-p.done:
			for {
				select {
				case snapshot := <-p.queue:
					p.send(snapshot)
				default:
					return
				}
			}
		}
	}
}

// send publishes one snapshot. Failures are logged and swallowed so a
// Redis outage never affects the board.
func (p *RedisPublisher) send(snapshot []domain.Project) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.Publish(ctx, snapshot); err != nil {
		log.Printf("[redis] publish to %s failed: %v", p.channel, err)
	}
}
