// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package amqp

import (
	"context"
	"fmt"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

// PublishToQueue declares queueName as a durable queue and publishes
// payload to it on the default exchange. The declaration is idempotent as
// long as the existing queue was declared durable.
//
// No publisher confirms are used: the call returns once the channel has
// accepted the publish, not once the broker has persisted the message.
func (c *Client) PublishToQueue(ctx context.Context, queueName string, payload []byte) error {
	if queueName == "" {
		return ErrInvalidQueueName
	}

	ch, err := c.channel()
	if err != nil {
		return err
	}

	c.chMu.Lock()
	defer c.chMu.Unlock()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %q: %w", queueName, err)
	}

	msg := amqp091.Publishing{Body: payload}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, msg); err != nil {
		return fmt.Errorf("publish to queue %q: %w", queueName, err)
	}

	return nil
}
