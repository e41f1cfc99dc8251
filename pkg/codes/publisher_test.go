// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/moov-io/boleto/pkg/stream"

	"github.com/stretchr/testify/require"
)

func TestStreamPublisher(t *testing.T) {
	ctx := context.Background()
	topicURL := "mem://boleto-codes"

	topic, err := stream.Topic(ctx, topicURL)
	require.NoError(t, err)

	sub, err := stream.Subscription(ctx, topicURL)
	require.NoError(t, err)
	defer sub.Shutdown(ctx)

	pub := NewStreamPublisher(topic)
	defer pub.Shutdown(ctx)

	when := time.Date(2020, time.August, 1, 12, 0, 0, 0, time.UTC)
	pub.(*streamPublisher).now = func() time.Time { return when }

	out, err := testService(t, nil).Create(ctx, bancoobRequest(t))
	require.NoError(t, err)
	require.NoError(t, pub.Publish(ctx, out))

	msg, err := sub.Receive(ctx)
	require.NoError(t, err)
	msg.Ack()

	require.Equal(t, EventBoletoGenerated, msg.Metadata["type"])
	require.Equal(t, "756", msg.Metadata["bankCode"])

	var event Event
	require.NoError(t, json.Unmarshal(msg.Body, &event))
	require.Equal(t, EventBoletoGenerated, event.Type)
	require.True(t, when.Equal(event.CreatedAt))
	require.Equal(t, bancoobBarcode, event.Boleto.Barcode)
	require.Equal(t, bancoobDigitableLine, event.Boleto.DigitableLine)
}

func TestStreamPublisher__Nil(t *testing.T) {
	ctx := context.Background()

	topic, err := stream.Topic(ctx, "mem://boleto-nil")
	require.NoError(t, err)

	pub := NewStreamPublisher(topic)
	defer pub.Shutdown(ctx)

	require.Error(t, pub.Publish(ctx, nil))
}
