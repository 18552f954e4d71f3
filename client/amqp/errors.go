// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package amqp

import "errors"

// Client errors.
var (
	ErrNoAddress        = errors.New("no broker address configured")
	ErrNotConnected     = errors.New("client not connected")
	ErrAlreadyConnected = errors.New("client already connected")
	ErrConnectFailed    = errors.New("broker connection failed")
	ErrClosed           = errors.New("client closed")
	ErrInvalidQueueName = errors.New("queue name cannot be empty")
)
