// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package stream exposes gocloud.dev/pubsub and side-loads various packages
// to register implementations such as kafka or in-memory. Please refer to
// specific documentation for each implementation.
//
//  - https://gocloud.dev/howto/pubsub/publish/
//  - https://gocloud.dev/howto/pubsub/subscribe/
//
// Generated boleto codes are announced over the topic returned by OpenTopic.
package stream

import (
	"context"
	"errors"

	"github.com/moov-io/boleto/pkg/config"

	"github.com/Shopify/sarama"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/kafkapubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

// ErrNoEvents is returned by OpenTopic when no events backend is configured.
var ErrNoEvents = errors.New("no events backend configured")

// OpenTopic returns the pubsub.Topic described by cfg. Callers are
// responsible for calling Shutdown on the returned topic.
func OpenTopic(ctx context.Context, cfg *config.Events) (*pubsub.Topic, error) {
	if cfg == nil {
		return nil, ErrNoEvents
	}
	if cfg.InMem != nil {
		return Topic(ctx, cfg.InMem.URL)
	}
	if cfg.Kafka != nil {
		return KafkaTopic(cfg.Kafka.Brokers, KafkaConfig(), cfg.Kafka.Topic, nil)
	}
	return nil, ErrNoEvents
}

func Topic(ctx context.Context, url string) (*pubsub.Topic, error) {
	return pubsub.OpenTopic(ctx, url)
}

func Subscription(ctx context.Context, url string) (*pubsub.Subscription, error) {
	return pubsub.OpenSubscription(ctx, url)
}

// KafkaConfig returns the sarama.Config used for publishing boleto events.
// Producers wait for every in-sync replica to acknowledge a message.
func KafkaConfig() *sarama.Config {
	cfg := kafkapubsub.MinimalConfig()
	cfg.ClientID = "boleto"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	return cfg
}

// KafkaTopic creates a pubsub.Topic that sends to a Kafka topic. It uses a sarama.SyncProducer to send messages.
// Producer options can be configured in the Producer section of the sarama.Config: https://godoc.org/github.com/Shopify/sarama#Config.
// Config.Producer.Return.Success must be set to true.
func KafkaTopic(brokers []string, config *sarama.Config, topicName string, opts *kafkapubsub.TopicOptions) (*pubsub.Topic, error) {
	return kafkapubsub.OpenTopic(brokers, config, topicName, opts)
}
