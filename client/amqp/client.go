// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package amqp

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

// Client is a minimal AMQP 0.9.1 client holding one connection and one
// channel for the lifetime of the process. Connect is attempted once; a
// failure is terminal for this instance.
type Client struct {
	opts *Options

	conn   *amqp091.Connection
	ch     *amqp091.Channel
	connMu sync.RWMutex

	chMu sync.Mutex

	state atomic.Int32
}

// New creates a new AMQP 0.9.1 client with the given options.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Client{opts: opts}, nil
}

// Connect establishes the connection and opens the channel. It makes a
// single attempt; on failure the client transitions to StateFailed and
// cannot be reused.
func (c *Client) Connect() error {
	if !c.state.CompareAndSwap(int32(StateUninitialized), int32(StateConnecting)) {
		switch c.State() {
		case StateConnecting, StateReady:
			return ErrAlreadyConnected
		case StateFailed:
			return ErrConnectFailed
		default:
			return ErrClosed
		}
	}

	url, err := c.opts.dialURL()
	if err != nil {
		c.state.Store(int32(StateFailed))
		return err
	}

	dialer := &net.Dialer{Timeout: c.opts.DialTimeout}
	cfg := amqp091.Config{
		TLSClientConfig: c.opts.TLSConfig,
		Heartbeat:       c.opts.Heartbeat,
		Dial:            dialer.Dial,
	}

	conn, err := amqp091.DialConfig(url, cfg)
	if err != nil {
		c.state.Store(int32(StateFailed))
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		c.state.Store(int32(StateFailed))
		return fmt.Errorf("%w: open channel: %w", ErrConnectFailed, err)
	}

	c.connMu.Lock()
	c.conn = conn
	c.ch = ch
	c.connMu.Unlock()

	c.state.Store(int32(StateReady))
	return nil
}

// Close tears down the channel and connection. It never fails: teardown
// errors are swallowed. Safe to call at any point in the lifecycle,
// including before Connect or after a failed Connect, and safe to call
// more than once.
func (c *Client) Close() error {
	for {
		prev := State(c.state.Load())
		if prev == StateClosed || prev == StateFailed {
			return nil
		}
		if c.state.CompareAndSwap(int32(prev), int32(StateClosing)) {
			break
		}
	}

	c.cleanupConn()
	c.state.Store(int32(StateClosed))
	return nil
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	return State(c.state.Load())
}

// IsConnected reports whether the client is ready to publish.
func (c *Client) IsConnected() bool {
	return c.State() == StateReady
}

func (c *Client) channel() (*amqp091.Channel, error) {
	if c.State() != StateReady {
		return nil, ErrNotConnected
	}
	c.connMu.RLock()
	ch := c.ch
	c.connMu.RUnlock()
	if ch == nil {
		return nil, ErrNotConnected
	}
	return ch, nil
}

func (c *Client) cleanupConn() {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	if c.ch != nil {
		_ = c.ch.Close()
		c.ch = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
