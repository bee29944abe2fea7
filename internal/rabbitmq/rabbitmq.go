package rabbitmq

import (
	"context"
	"fmt"
	"registration/internal/core/domain/logging"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection wraps amqp.Connection and redials in the background when the
// broker drops it.
type Connection struct {
	url  string
	log  logging.Logger
	lock sync.RWMutex
	conn *amqp.Connection

	closed int32
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.DialConfig(url, amqp.Config{
		Locale: "en_US",
		Dial:   amqp.DefaultDial(10 * time.Second),
	})
	if err != nil {
		return nil, err
	}

	connection := &Connection{url: url, log: log, conn: conn}
	go connection.watch(conn)
	return connection, nil
}

func (c *Connection) watch(conn *amqp.Connection) {
	reason, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))
	if !ok || c.IsClosed() {
		c.log.Info(context.Background(), "RabbitMQ connection closed.")
		return
	}

	c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
	for !c.IsClosed() {
		time.Sleep(reconnectDelay)

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
			continue
		}
		c.lock.Lock()
		c.conn = conn
		c.lock.Unlock()
		c.log.Info(context.Background(), "RabbitMQ reconnect success.")
		go c.watch(conn)
		return
	}
}

func (c *Connection) IsClosed() bool {
	return atomic.LoadInt32(&c.closed) == 1
}

func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return amqp.ErrClosed
	}
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.conn.Close()
}

// Channel opens a channel that is reopened on the current connection after
// the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	c.lock.RLock()
	ch, err := c.conn.Channel()
	c.lock.RUnlock()
	if err != nil {
		return nil, err
	}

	channel := &Channel{ch: ch, log: c.log}
	go channel.watch(c, ch)
	return channel, nil
}

type Channel struct {
	log  logging.Logger
	lock sync.RWMutex
	ch   *amqp.Channel

	closed int32
}

func (ch *Channel) watch(conn *Connection, current *amqp.Channel) {
	reason, ok := <-current.NotifyClose(make(chan *amqp.Error, 1))
	if !ok || ch.IsClosed() {
		return
	}

	ch.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
	for !ch.IsClosed() && !conn.IsClosed() {
		time.Sleep(reconnectDelay)

		conn.lock.RLock()
		next, err := conn.conn.Channel()
		conn.lock.RUnlock()
		if err != nil {
			ch.log.Error(context.Background(), "Channel recreate failed.", logging.Entry("err", err))
			continue
		}
		ch.lock.Lock()
		ch.ch = next
		ch.lock.Unlock()
		ch.log.Info(context.Background(), "Channel recreate success.")
		go ch.watch(conn, next)
		return
	}
}

func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if !atomic.CompareAndSwapInt32(&ch.closed, 0, 1) {
		return amqp.ErrClosed
	}
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch.Close()
}

// DeclareTopicExchange declares a durable topic exchange.
func (ch *Channel) DeclareTopicExchange(name string) error {
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil)
}

func (ch *Channel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}
