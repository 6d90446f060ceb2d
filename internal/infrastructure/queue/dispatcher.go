package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/innovest/platform/internal/api/metrics"
	"github.com/innovest/platform/internal/notifications"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DedupChecker guards notifications that must be delivered at most once.
type DedupChecker interface {
	// Seen marks the key and reports whether it had been marked before.
	Seen(ctx context.Context, key string) (bool, error)
}

// Dispatcher routes outbound mail to a fixed set of workers using consistent
// hashing on the recipient address, so mails to the same recipient keep their
// enqueue order. Delivery is fire-and-forget: failures are logged and
// counted, never surfaced to the request that queued the message.
type Dispatcher struct {
	workers []chan notifications.Message
	mailer  notifications.Mailer
	dedup   DedupChecker
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. dedup may be nil, in which case
// every enqueued message is delivered.
func NewDispatcher(numWorkers int, mailer notifications.Mailer, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan notifications.Message, numWorkers),
		mailer:  mailer,
		dedup:   dedup,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan notifications.Message, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a message to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity; a full shard drops the message
// with a log entry rather than stalling the request path.
func (d *Dispatcher) Enqueue(msg notifications.Message) {
	i := d.shardIndex(msg.To)
	select {
	case d.workers[i] <- msg:
		metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(i)).Inc()
	default:
		metrics.MailsTotal.WithLabelValues("dropped").Inc()
		d.log.Error().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail queue full, message dropped")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan notifications.Message) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.WithLabelValues(worker).Dec()
			d.deliver(ctx, id, msg)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, id int, msg notifications.Message) {
	if d.dedup != nil && msg.DedupKey != "" {
		seen, err := d.dedup.Seen(ctx, msg.DedupKey)
		if err != nil {
			// fail open: a dedup-store outage must not stop delivery
			d.log.Warn().Err(err).Str("key", msg.DedupKey).Msg("dedup check failed, sending anyway")
		} else if seen {
			metrics.MailsTotal.WithLabelValues("deduplicated").Inc()
			d.log.Debug().Str("key", msg.DedupKey).Msg("duplicate notification skipped")
			return
		}
	}

	if err := d.mailer.Send(ctx, msg); err != nil {
		metrics.MailsTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Int("worker_id", id).
			Msg("mail delivery failed")
		return
	}
	metrics.MailsTotal.WithLabelValues("sent").Inc()
}
