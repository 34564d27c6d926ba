package netsync

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"driftshore/internal/entity"
	"driftshore/internal/world"
)

// Applier receives the decoded mutations. The game shell implements it
// over the chunk cache and the entity snapshot.
type Applier interface {
	UpsertChunk(chunk *world.TileChunk)
	RemoveChunk(chunkX, chunkY int)
	UpsertEntity(rec *entity.Record)
	RemoveEntity(category entity.Category, id string)
}

// Client connects to the sync server, decodes its messages and queues
// the resulting mutations. The read loop runs on its own goroutine but
// never touches game state: the host drains the queue between frames,
// which is what keeps every frame's snapshot stable.
type Client struct {
	url            string
	reconnectDelay time.Duration
	cellSize       float64

	mu      sync.Mutex
	pending []func(Applier)

	badEntities map[string]struct{} // malformed entity ids already logged
}

// NewClient creates a sync client for the given websocket URL. cellSize
// is the building-cell edge used when normalizing structural cells.
func NewClient(url string, reconnectDelay time.Duration, cellSize float64) *Client {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}
	return &Client{
		url:            url,
		reconnectDelay: reconnectDelay,
		cellSize:       cellSize,
		badEntities:    make(map[string]struct{}),
	}
}

// Run dials and reads until the context is cancelled, reconnecting after
// the configured delay on any connection failure.
func (c *Client) Run(ctx context.Context) {
	for {
		if err := c.readOnce(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Warning: sync connection lost: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *Client) readOnce(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if err := c.HandleMessage(raw); err != nil {
			// One bad frame never takes the connection down.
			log.Printf("Warning: dropping sync message: %v", err)
		}
	}
}

// HandleMessage validates and decodes one raw sync frame, queueing its
// mutation for the next Drain. Exposed so replay tooling and tests can
// feed frames without a socket.
func (c *Client) HandleMessage(raw []byte) error {
	if err := ValidateMessage(raw); err != nil {
		return err
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("malformed sync message: %w", err)
	}

	switch msg.Type {
	case MsgChunkUpsert:
		chunk, err := DecodeChunk(msg.Chunk)
		if err != nil {
			return err
		}
		c.enqueue(func(a Applier) { a.UpsertChunk(chunk) })

	case MsgChunkDelete:
		cx, cy := msg.ChunkX, msg.ChunkY
		c.enqueue(func(a Applier) { a.RemoveChunk(cx, cy) })

	case MsgEntityUpsert:
		rec, err := msg.Entity.Normalize(c.cellSize)
		if err != nil {
			c.reportBadEntity(msg.Entity.ID, err)
			return nil // excluded, not an error worth a connection log
		}
		c.enqueue(func(a Applier) { a.UpsertEntity(rec) })

	case MsgEntityDelete:
		category, ok := entity.CategoryFromName(msg.Category)
		if !ok {
			return fmt.Errorf("delete for unknown category %q", msg.Category)
		}
		id := msg.ID
		c.enqueue(func(a Applier) { a.RemoveEntity(category, id) })

	default:
		return fmt.Errorf("unhandled sync message type %q", msg.Type)
	}
	return nil
}

func (c *Client) enqueue(mutation func(Applier)) {
	c.mu.Lock()
	c.pending = append(c.pending, mutation)
	c.mu.Unlock()
}

// Drain applies every queued mutation in arrival order and returns how
// many were applied. The host calls this between frames, never during
// frame computation.
func (c *Client) Drain(a Applier) int {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, mutation := range batch {
		mutation(a)
	}
	return len(batch)
}

// PendingCount returns the number of queued mutations.
func (c *Client) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Client) reportBadEntity(id string, err error) {
	if id == "" {
		id = "<no id>"
	}
	if _, seen := c.badEntities[id]; seen {
		return
	}
	c.badEntities[id] = struct{}{}
	log.Printf("Warning: excluding entity %q from sync: %v", id, err)
}
