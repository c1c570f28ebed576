package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

type event struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// Publisher emits data-changed notifications to an MQTT topic so front ends
// and automations can re-fetch the bell list.
type Publisher struct {
	client mqtt.Client
	topic  string
	logger *zap.Logger
}

func NewPublisher(broker, clientID, topic string, logger *zap.Logger) (*Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

func (p *Publisher) PublishDataChanged(ctx context.Context) error {
	payload, err := json.Marshal(event{
		Type:      "data_changed",
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	token := p.client.Publish(p.topic, 0, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", p.topic, token.Error())
	}

	p.logger.Debug("data changed event published", zap.String("topic", p.topic))
	return nil
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
