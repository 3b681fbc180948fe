package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// dialTimeout ограничивает подключение к брокеру, публикация идет в рамках HTTP запроса
	dialTimeout = 3 * time.Second

	// reconnectBackoff пауза между попытками переподключения
	reconnectBackoff = 5 * time.Second
)

var (
	// ErrPublisherClosed возвращается после Close
	ErrPublisherClosed = errors.New("mq: publisher closed")

	// ErrNotConnected возвращается, когда соединения с брокером нет и переподключиться не удалось
	ErrNotConnected = errors.New("mq: not connected to broker")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type dialFunc func(url string) (*amqp.Connection, error)

func dialBroker(url string) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
}

// Publisher публикует JSON события в topic exchange RabbitMQ
// После обрыва соединения переподключается при следующей публикации (не чаще reconnectBackoff)
type Publisher struct {
	url      string
	exchange string
	logger   Logger
	dial     dialFunc
	now      func() time.Time

	mu          sync.Mutex
	conn        *amqp.Connection
	ch          *amqp.Channel
	nextAttempt time.Time
	closed      bool
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url, exchange string, logger Logger) (*Publisher, error) {
	p := newPublisher(url, exchange, logger, dialBroker)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func newPublisher(url, exchange string, logger Logger, dial dialFunc) *Publisher {
	return &Publisher{
		url:      url,
		exchange: exchange,
		logger:   logger,
		dial:     dial,
		now:      time.Now,
	}
}

// connect открывает соединение и канал, объявляет exchange. Вызывается под mu
func (p *Publisher) connect() error {
	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("mq: dial rabbitmq: %w", err)
	}

	ch, err := p.openChannel(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.ch = ch
	go p.watch(conn, conn.NotifyClose(make(chan *amqp.Error, 1)))

	return nil
}

func (p *Publisher) openChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("mq: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("mq: declare exchange: %w", err)
	}

	return ch, nil
}

// watch ждет закрытия соединения; штатный Close закрывает closes без ошибки
func (p *Publisher) watch(conn *amqp.Connection, closes <-chan *amqp.Error) {
	amqpErr, ok := <-closes
	if !ok || amqpErr == nil {
		return
	}

	p.logger.Error("mq: connection to broker lost, events will be published after reconnect: %v", amqpErr)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == conn {
		p.conn = nil
		p.ch = nil
	}
}

// channel возвращает открытый канал, при необходимости переподключаясь
func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPublisherClosed
	}
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	// Соединение живо, закрыт только канал (например, ошибка уровня канала)
	if p.conn != nil && !p.conn.IsClosed() {
		ch, err := p.openChannel(p.conn)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
		}
		p.ch = ch
		return ch, nil
	}

	if p.now().Before(p.nextAttempt) {
		return nil, ErrNotConnected
	}

	if err := p.connect(); err != nil {
		p.nextAttempt = p.now().Add(reconnectBackoff)
		p.logger.Error("mq: reconnect failed, next attempt in %s: %v", reconnectBackoff, err)
		return nil, fmt.Errorf("%w: %v", ErrNotConnected, err)
	}

	p.logger.Info("mq: reconnected to broker, exchange %s", p.exchange)
	return p.ch, nil
}

// PublishJSON сериализует v в JSON и публикует с ключом маршрутизации key
func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("mq: marshal %s: %w", key, err)
	}

	ch, err := p.channel()
	if err != nil {
		return fmt.Errorf("mq: publish %s: %w", key, err)
	}

	return ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// Close закрывает канал и соединение; последующие публикации возвращают ErrPublisherClosed
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) PublishJSON(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
