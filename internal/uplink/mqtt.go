package uplink

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// pahoPublisher adapts a connected paho client to the Publisher interface.
type pahoPublisher struct {
	client mqtt.Client
}

// Dial connects to the broker named in cfg and returns a Publisher plus a
// close function.
func Dial(cfg Config) (Publisher, func(), error) {
	cfg = cfg.withDefaults()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID)
	opts.SetKeepAlive(10 * time.Second)
	opts.SetPingTimeout(2 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, nil, fmt.Errorf("connecting to broker %s: %w", cfg.BrokerURL, token.Error())
	}

	closeFn := func() { client.Disconnect(250) }
	return pahoPublisher{client: client}, closeFn, nil
}

func (p pahoPublisher) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := p.client.Publish(topic, qos, retained, payload)
	token.Wait()
	return token.Error()
}
