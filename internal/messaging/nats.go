// Package messaging provides the NATS-backed notification publisher.
// Publishing is best-effort: messages are handed to a buffered queue and
// written to the broker by a background worker, so callers never block on
// broker I/O and never see publish failures.
package messaging

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// TopicTaskUpdated carries one event per successful task update.
const TopicTaskUpdated = "update-task"

const queueSize = 256

type envelope struct {
	topic string
	data  []byte
}

type Publisher struct {
	nc    *nats.Conn
	queue chan envelope
	done  chan struct{}
}

// Connect dials the broker and starts the publish worker. With
// RetryOnFailedConnect the publisher comes up even when the broker is
// down and flushes once it reconnects.
func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, err
	}

	p := &Publisher{
		nc:    nc,
		queue: make(chan envelope, queueSize),
		done:  make(chan struct{}),
	}
	go p.loop()

	log.Printf("[publish] connected to NATS at %s", url)
	return p, nil
}

// Send enqueues a message for the topic. It never blocks and never
// reports failure to the caller; marshal errors and a full queue are
// logged and the message dropped.
func (p *Publisher) Send(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[publish][err] marshal topic=%s: %v", topic, err)
		return
	}
	select {
	case p.queue <- envelope{topic: topic, data: data}:
	default:
		log.Printf("[publish][drop] queue full topic=%s", topic)
	}
}

// Subscribe registers a handler for a topic on the shared connection.
func (p *Publisher) Subscribe(topic string, handler func(data []byte)) (*nats.Subscription, error) {
	return p.nc.Subscribe(topic, func(msg *nats.Msg) {
		handler(msg.Data)
	})
}

func (p *Publisher) loop() {
	defer close(p.done)
	for m := range p.queue {
		if err := p.nc.Publish(m.topic, m.data); err != nil {
			log.Printf("[publish][err] topic=%s: %v", m.topic, err)
		}
	}
}

// Close drains the queue, flushes the connection and closes it.
func (p *Publisher) Close() {
	close(p.queue)
	<-p.done
	if err := p.nc.Drain(); err != nil {
		log.Printf("[publish][err] drain: %v", err)
	}
}
