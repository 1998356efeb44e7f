package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/webshop-io/shop-api/internal/api/metrics"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes order status events to a fixed set of workers using
// consistent hashing on the order id, guaranteeing per-order event ordering.
type Dispatcher struct {
	workers []chan ports.OrderEventInput
	service ports.OrderEventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.OrderEventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.OrderEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OrderEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its order.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.OrderEventInput) {
	i := d.shardIndex(event.OrderID)
	d.workers[i] <- event
	metrics.OrderEventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// EnqueueBatch enqueues multiple events preserving per-order ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.OrderEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(orderID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OrderEventInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			err := d.service.Process(ctx, event)
			result := "ok"
			if err != nil {
				result = "error"
				d.log.Error().Err(err).
					Int64("order_id", event.OrderID).
					Int("worker_id", id).
					Msg("event processing failed")
			}
			metrics.OrderEventProcessingDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
			metrics.OrderEventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
