// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gocloud.dev/pubsub"
)

// EventBoletoGenerated is the type of event sent after codes are generated.
const EventBoletoGenerated = "BoletoGenerated"

// Event is the message body sent to the events topic.
type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	Boleto    *Boleto   `json:"boleto"`
}

// Publisher announces generated boletos to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, b *Boleto) error
	Shutdown(ctx context.Context) error
}

type streamPublisher struct {
	topic *pubsub.Topic
	now   func() time.Time
}

// NewStreamPublisher returns a Publisher which sends JSON events to topic.
func NewStreamPublisher(topic *pubsub.Topic) Publisher {
	return &streamPublisher{
		topic: topic,
		now:   time.Now,
	}
}

func (pub *streamPublisher) Publish(ctx context.Context, b *Boleto) error {
	if b == nil {
		return errors.New("nil Boleto")
	}
	body, err := json.Marshal(Event{
		Type:      EventBoletoGenerated,
		CreatedAt: pub.now().UTC(),
		Boleto:    b,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %v", err)
	}
	return pub.topic.Send(ctx, &pubsub.Message{
		Body: body,
		Metadata: map[string]string{
			"type":     EventBoletoGenerated,
			"bankCode": b.BankCode,
		},
	})
}

func (pub *streamPublisher) Shutdown(ctx context.Context) error {
	return pub.topic.Shutdown(ctx)
}
