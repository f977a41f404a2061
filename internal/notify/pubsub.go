// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"

	"giftshop/internal/catalog"
)

// PubSubNotifier publishes envelopes to a Pub/Sub topic for a downstream
// mailer.
type PubSubNotifier struct {
	topic     *pubsub.Topic
	recipient string
	marshal   func(any) ([]byte, error)
}

// NewPubSub returns a PubSubNotifier for topic.
func NewPubSub(topic *pubsub.Topic, recipient string) (*PubSubNotifier, error) {
	if topic == nil {
		return nil, errors.New("pubsub notifier: topic is required")
	}
	return &PubSubNotifier{topic: topic, recipient: recipient, marshal: json.Marshal}, nil
}

func (n *PubSubNotifier) Notify(ctx context.Context, msg catalog.Notification) error {
	env := NewEnvelope(msg, n.recipient)
	data, err := n.marshal(env)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	attrs := make(map[string]string)
	setAttr(attrs, "id", env.ID)
	setAttr(attrs, "event", env.Event)

	result := n.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func setAttr(attrs map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		attrs[key] = v
	}
}
