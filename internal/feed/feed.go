// Package feed hands controller snapshots from the single-threaded UI loop
// to concurrent readers (HTTP API, uplink) without exposing the controller
// itself.
package feed

import (
	"sync"

	"github.com/openadas/adas-display/internal/model"
)

// Hub holds the most recently published snapshot. Publish is called by the
// UI loop after every mutating controller call; Latest and Seq may be called
// from any goroutine.
type Hub struct {
	mu     sync.RWMutex
	latest model.Snapshot
	seq    uint64
}

func NewHub() *Hub {
	return &Hub{}
}

// Publish replaces the stored snapshot and bumps the sequence number.
func (h *Hub) Publish(s model.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = s
	h.seq++
}

// Latest returns the most recently published snapshot.
func (h *Hub) Latest() model.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Seq returns the number of snapshots published so far.
func (h *Hub) Seq() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.seq
}
