// Package uplink periodically transmits the display state to an MQTT
// broker. The frame format descends from the point-to-point radio link the
// display originally paired with: a sync word, a monotonically increasing
// counter, and a fixed cadence with no acknowledgment or retry.
package uplink

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/openadas/adas-display/internal/model"
)

// Publisher abstracts the broker client so tests can capture frames.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// StateSource is the narrow feed contract required by the uplink.
type StateSource interface {
	Latest() model.Snapshot
}

// Frame is one uplink transmission.
type Frame struct {
	Sync   byte           `json:"sync"`
	Seq    uint64         `json:"seq"`
	State  model.Snapshot `json:"state"`
	SentAt time.Time      `json:"sent_at"`
}

// Config holds uplink settings. Zero values fall back to defaults.
type Config struct {
	BrokerURL string
	Topic     string
	ClientID  string
	QoS       byte
	Interval  time.Duration
	SyncWord  byte
}

func (c Config) withDefaults() Config {
	if c.Topic == "" {
		c.Topic = model.DefaultUplinkTopic
	}
	if c.ClientID == "" {
		c.ClientID = "adas-display"
	}
	if c.Interval <= 0 {
		c.Interval = model.DefaultUplinkInterval
	}
	if c.SyncWord == 0 {
		c.SyncWord = model.UplinkSyncWord
	}
	return c
}

// Uplink sends one frame per interval, fire-and-forget. It reads published
// snapshots only; failures are logged and the next interval proceeds.
type Uplink struct {
	cfg    Config
	pub    Publisher
	source StateSource
	seq    uint64
	now    func() time.Time
}

// New creates an uplink over an already connected publisher.
func New(cfg Config, pub Publisher, source StateSource) *Uplink {
	return &Uplink{
		cfg:    cfg.withDefaults(),
		pub:    pub,
		source: source,
		now:    time.Now,
	}
}

// Run transmits until ctx is cancelled.
func (u *Uplink) Run(ctx context.Context) error {
	ticker := time.NewTicker(u.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := u.sendOnce(); err != nil {
				// No retry: the counter keeps climbing and the next
				// interval sends the then-current state.
				log.Printf("uplink: publish failed: %v", err)
			}
		}
	}
}

func (u *Uplink) sendOnce() error {
	frame := Frame{
		Sync:   u.cfg.SyncWord,
		Seq:    u.seq,
		State:  u.source.Latest(),
		SentAt: u.now(),
	}
	u.seq++

	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("encoding frame %d: %w", frame.Seq, err)
	}
	return u.pub.Publish(u.cfg.Topic, u.cfg.QoS, false, payload)
}
