package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/metrics"
)

const (
	defaultWorkers  = 8
	channelBuffer   = 256
	defaultInterval = 30 * time.Second
)

// ErrStopped is returned once the dispatcher's workers have exited.
var ErrStopped = errors.New("event dispatcher stopped")

type job struct {
	event domain.TrackingEvent
	done  func(error)
}

// Dispatcher routes tracking events to a fixed set of workers using consistent
// hashing on the waybill, so events of one parcel are recorded in order.
type Dispatcher struct {
	workers []chan job
	stopped chan struct{}
	sink    ports.EventSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.EventSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		stopped: make(chan struct{}),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after which every enqueue fails with ErrStopped. Start must be called once.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Enqueue hands an event to the worker responsible for its waybill without
// waiting for it to be recorded.
func (d *Dispatcher) Enqueue(ctx context.Context, event domain.TrackingEvent) error {
	return d.enqueue(ctx, job{event: event})
}

// DispatchBatch enqueues every event of batch and blocks until all of them
// have been recorded. It returns the number of events that failed.
func (d *Dispatcher) DispatchBatch(ctx context.Context, batch []domain.TrackingEvent) (int, error) {
	results := make(chan error, len(batch))
	done := func(err error) { results <- err }

	for i, e := range batch {
		if err := d.enqueue(ctx, job{event: e, done: done}); err != nil {
			return len(batch) - i, err
		}
	}

	failed := 0
	for range batch {
		select {
		case err := <-results:
			if err != nil {
				failed++
			}
		case <-ctx.Done():
			return failed, ctx.Err()
		case <-d.stopped:
			return failed, ErrStopped
		}
	}
	return failed, nil
}

func (d *Dispatcher) enqueue(ctx context.Context, j job) error {
	idx := d.shardIndex(j.event.Waybill)
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}
	select {
	case d.workers[idx] <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a waybill deterministically to a worker index.
func (d *Dispatcher) shardIndex(waybill string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(waybill))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-ch:
			if !ok {
				return
			}
			metrics.EventsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

			event := j.event
			err := d.sink.InsertEvent(ctx, &event)
			if err != nil {
				metrics.EventsErrorsTotal.WithLabelValues("insert_failed").Inc()
				d.log.Error().Err(err).
					Str("waybill", event.Waybill).
					Int("worker_id", id).
					Msg("event recording failed")
			} else {
				metrics.EventsProcessedTotal.WithLabelValues(event.Code).Inc()
			}
			if j.done != nil {
				j.done(err)
			}
		}
	}
}

// Pump polls the carrier for customer events, records them through the
// dispatcher and confirms each page once every event in it was recorded.
type Pump struct {
	events     ports.EventService
	dispatcher *Dispatcher
	interval   time.Duration
	limit      int
	lang       string
	log        zerolog.Logger
}

// NewPump returns a Pump. A non-positive interval uses the default.
func NewPump(events ports.EventService, dispatcher *Dispatcher, interval time.Duration, log zerolog.Logger) *Pump {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Pump{events: events, dispatcher: dispatcher, interval: interval, log: log}
}

// Run drains pages until the carrier has nothing left, then waits for the
// next tick. It returns when ctx is cancelled.
func (p *Pump) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		for {
			n, err := p.Drain(ctx)
			if err != nil {
				p.log.Error().Err(err).Msg("event pump cycle failed")
				break
			}
			if n == 0 {
				break
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Drain processes one page and returns how many events it confirmed. A page
// with failed events is left unconfirmed so the carrier delivers it again.
func (p *Pump) Drain(ctx context.Context) (int, error) {
	batch, err := p.events.CustomerEvents(ctx, p.limit, p.lang)
	if err != nil {
		return 0, err
	}
	if len(batch.Events) == 0 {
		return 0, nil
	}

	failed, err := p.dispatcher.DispatchBatch(ctx, batch.Events)
	if err != nil {
		return 0, err
	}
	if failed > 0 {
		p.log.Warn().
			Str("confirm_id", batch.ConfirmID).
			Int("failed", failed).
			Msg("page left unconfirmed")
		return 0, nil
	}

	// The carrier redelivers a page it cannot be told about, so draining
	// further would fetch the same events again.
	if batch.ConfirmID == "" {
		p.log.Warn().Int("events", len(batch.Events)).Msg("page has no confirm id")
		return 0, nil
	}
	if err := p.events.ConfirmEvents(ctx, batch.ConfirmID); err != nil {
		return 0, err
	}
	return len(batch.Events), nil
}
