// Package rtt implements the ranging-request broker: it accepts batch
// ranging requests, hands them to the radio which replies out-of-band, and
// reconciles the radio's replies back to the waiting client with exactly one
// terminal delivery per accepted request.
package rtt

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyRequest is returned synchronously for a request without peers.
	// No operation is created and nothing is delivered to the sink.
	ErrEmptyRequest = errors.New("ranging request must not be empty")
	// ErrNoSink is returned when the caller provides no callback sink.
	ErrNoSink = errors.New("callback sink must not be nil")
	// ErrNoHandle is returned when the caller provides no liveness handle.
	ErrNoHandle = errors.New("client handle must not be nil")
	// ErrClosed is returned for requests arriving after the broker stopped.
	ErrClosed = errors.New("broker is shut down")
)

// firstCmdID is where command-id allocation starts. Zero is reserved as the
// "no command" value, matching the radio layer.
const firstCmdID = 1000

type Config struct {
	// RangingTimeout bounds the wait for a radio callback per operation.
	// On expiry the operation fails and a hardware-side cancel is attempted.
	RangingTimeout time.Duration `mapstructure:"ranging-timeout"`
	// RecentHistory is the number of recently terminated command ids kept to
	// distinguish late duplicate radio callbacks from unknown ids in logs
	// and metrics. Both are discarded either way.
	RecentHistory int `mapstructure:"recent-history"`
}

func DefaultConfig() Config {
	return Config{
		RangingTimeout: 5 * time.Second,
		RecentHistory:  128,
	}
}

func (cfg *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddDuration("ranging timeout", cfg.RangingTimeout)
	encoder.AddInt("recent history", cfg.RecentHistory)
	return nil
}

// pendingOp is the broker-owned record of one outstanding request. It is
// created when a request is accepted and destroyed by exactly one of: radio
// result, submission failure, timeout, client death, radio disable.
type pendingOp struct {
	cmdID   uint32
	caller  Identity
	request RangingRequest
	sink    ResultSink

	clientDone <-chan struct{}
	watch      uuid.UUID
	timer      clockwork.Timer
}

func (op *pendingOp) addrs() []net.HardwareAddr {
	addrs := make([]net.HardwareAddr, len(op.request.Peers))
	for i, peer := range op.request.Peers {
		addrs[i] = peer.Addr
	}
	return addrs
}

type resultsEvent struct {
	cmdID   uint32
	results ResultSet
}

type Opt func(*Broker)

func WithLogger(logger *zap.Logger) Opt {
	return func(b *Broker) {
		b.log = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(b *Broker) {
		b.cfg = cfg
	}
}

func WithClock(clock clockwork.Clock) Opt {
	return func(b *Broker) {
		b.clock = clock
	}
}

// WithAvailabilityListener registers fn to be notified of availability
// transitions. fn is invoked on the broker's event loop and must not block.
func WithAvailabilityListener(fn func(available bool)) Opt {
	return func(b *Broker) {
		b.availListener = fn
	}
}

// Broker correlates client ranging requests with asynchronous radio replies.
//
// All mutable state (the correlation table, the command-id counter, the
// availability flag) is owned by a single event loop; client calls, radio
// results, death notifications and timeouts are posted to it as events and
// are never handled concurrently with each other.
type Broker struct {
	ctx    context.Context
	cancel context.CancelFunc
	eg     errgroup.Group

	cfg   Config
	log   *zap.Logger
	clock clockwork.Clock

	radio   Radio
	perms   PermissionChecker
	watcher DeathWatcher

	requests chan *pendingOp
	results  chan resultsEvent
	deaths   chan uint32
	timeouts chan uint32
	avail    chan bool

	availListener func(bool)

	// event-loop owned, never touched outside loop
	pending   map[uint32]*pendingOp
	recent    *lru.Cache[uint32, struct{}]
	nextCmdID uint32
	enabled   bool
}

func New(radio Radio, perms PermissionChecker, watcher DeathWatcher, opts ...Opt) *Broker {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Broker{
		ctx:    ctx,
		cancel: cancel,

		cfg:   DefaultConfig(),
		log:   zap.NewNop(),
		clock: clockwork.NewRealClock(),

		radio:   radio,
		perms:   perms,
		watcher: watcher,

		requests: make(chan *pendingOp),
		results:  make(chan resultsEvent),
		deaths:   make(chan uint32),
		timeouts: make(chan uint32),
		avail:    make(chan bool),

		pending:   make(map[uint32]*pendingOp),
		nextCmdID: firstCmdID,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.recent, _ = lru.New[uint32, struct{}](max(b.cfg.RecentHistory, 1))
	return b
}

// Start launches the event loop.
func (b *Broker) Start() {
	b.eg.Go(func() error {
		b.loop()
		return nil
	})
}

// Stop terminates the event loop and waits for it to exit. Outstanding
// operations are failed so no sink is left waiting forever.
func (b *Broker) Stop() {
	b.cancel()
	b.eg.Wait()
}

// StartRanging submits a batch ranging request on behalf of caller. A nil
// return means the request was accepted and the sink is guaranteed exactly
// one terminal delivery; all later failures are reported through the sink,
// never as an error. Validation failures are returned synchronously and
// leave no state behind.
func (b *Broker) StartRanging(
	ctx context.Context,
	caller Identity,
	request RangingRequest,
	sink ResultSink,
	client Handle,
) error {
	if len(request.Peers) == 0 {
		return ErrEmptyRequest
	}
	if sink == nil {
		return ErrNoSink
	}
	if client == nil {
		return ErrNoHandle
	}
	op := &pendingOp{
		caller:     caller,
		request:    request,
		sink:       sink,
		clientDone: client.Done(),
	}
	select {
	case b.requests <- op:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-b.ctx.Done():
		return ErrClosed
	}
}

// HandleResults injects a radio result callback for cmdID. Safe to call from
// any goroutine; results for ids that are no longer outstanding are
// discarded silently.
func (b *Broker) HandleResults(cmdID uint32, results ResultSet) {
	select {
	case b.results <- resultsEvent{cmdID: cmdID, results: results}:
	case <-b.ctx.Done():
	}
}

// Enable marks the radio available again.
func (b *Broker) Enable() {
	b.setAvailable(true)
}

// Disable marks the radio unavailable. Every outstanding operation receives
// a terminal StatusFailNotAvailable delivery and subsequent requests are
// answered with the same status until Enable.
func (b *Broker) Disable() {
	b.setAvailable(false)
}

func (b *Broker) setAvailable(enabled bool) {
	select {
	case b.avail <- enabled:
	case <-b.ctx.Done():
	}
}

func (b *Broker) loop() {
	for {
		select {
		case op := <-b.requests:
			b.accept(op)
		case ev := <-b.results:
			b.complete(ev.cmdID, ev.results)
		case cmdID := <-b.deaths:
			b.purge(cmdID)
		case cmdID := <-b.timeouts:
			b.expire(cmdID)
		case enabled := <-b.avail:
			b.transition(enabled)
		case <-b.ctx.Done():
			b.drain()
			return
		}
	}
}

// accept implements the submission half: allocate an id, bind a death watch,
// store the operation and hand it to the radio. A radio rejection turns into
// an immediate terminal failure.
func (b *Broker) accept(op *pendingOp) {
	if !b.enabled {
		b.deliver(op, StatusFailNotAvailable, nil)
		return
	}

	op.cmdID = b.allocCmdID()
	cmdID := op.cmdID
	op.watch = b.watcher.Watch(op.clientDone, func() {
		select {
		case b.deaths <- cmdID:
		case <-b.ctx.Done():
		}
	})
	b.pending[cmdID] = op
	outstandingOps.Set(float64(len(b.pending)))

	if !b.radio.Submit(cmdID, op.request.Peers) {
		b.log.Warn("radio rejected ranging command",
			zap.Uint32("cmd_id", cmdID),
			zap.Object("caller", op.caller),
		)
		b.remove(op)
		b.deliver(op, StatusFail, nil)
		return
	}

	op.timer = b.clock.AfterFunc(b.cfg.RangingTimeout, func() {
		select {
		case b.timeouts <- cmdID:
		case <-b.ctx.Done():
		}
	})
	b.log.Debug("ranging command submitted",
		zap.Uint32("cmd_id", cmdID),
		zap.Object("caller", op.caller),
		zap.Int("peers", len(op.request.Peers)),
	)
}

// complete implements delivery of a radio result. Permission for the
// original caller is re-checked here, at delivery time: the radio may have
// succeeded, but data is withheld entirely if the caller lost the
// permission in the meantime.
func (b *Broker) complete(cmdID uint32, results ResultSet) {
	op, ok := b.pending[cmdID]
	if !ok {
		b.discard(cmdID)
		return
	}
	b.remove(op)

	if !b.perms.Allowed(op.caller) {
		b.log.Warn("location permission revoked, withholding results",
			zap.Uint32("cmd_id", cmdID),
			zap.Object("caller", op.caller),
		)
		permissionDenials.Inc()
		b.deliver(op, StatusFail, nil)
		return
	}
	b.deliver(op, StatusSuccess, reconcile(op.request, results))
}

// purge drops an operation whose client died. Nothing is delivered - there
// is nobody left to deliver to. A late radio result for the id is discarded
// by complete.
func (b *Broker) purge(cmdID uint32) {
	op, ok := b.pending[cmdID]
	if !ok {
		return
	}
	b.log.Debug("client died, dropping ranging command", zap.Uint32("cmd_id", cmdID))
	clientDeaths.Inc()
	b.remove(op)
	b.radio.Cancel(cmdID, op.addrs())
}

// expire fails an operation whose radio callback never came.
func (b *Broker) expire(cmdID uint32) {
	op, ok := b.pending[cmdID]
	if !ok {
		return
	}
	b.log.Warn("ranging command timed out", zap.Uint32("cmd_id", cmdID))
	rangingTimeouts.Inc()
	b.remove(op)
	b.radio.Cancel(cmdID, op.addrs())
	b.deliver(op, StatusFail, nil)
}

func (b *Broker) transition(enabled bool) {
	if enabled == b.enabled {
		return
	}
	b.enabled = enabled
	b.log.Info("ranging availability changed", zap.Bool("available", enabled))
	if !enabled {
		for _, op := range b.pending {
			b.remove(op)
			b.deliver(op, StatusFailNotAvailable, nil)
		}
	}
	if b.availListener != nil {
		b.availListener(enabled)
	}
}

// drain fails whatever is still outstanding on shutdown.
func (b *Broker) drain() {
	for _, op := range b.pending {
		b.remove(op)
		b.deliver(op, StatusFail, nil)
	}
}

// remove destroys a pending operation: correlation table entry, death watch
// and timeout go away atomically with respect to the event loop. The id is
// remembered so a late radio callback can be told apart from a bogus one.
func (b *Broker) remove(op *pendingOp) {
	delete(b.pending, op.cmdID)
	outstandingOps.Set(float64(len(b.pending)))
	b.recent.Add(op.cmdID, struct{}{})
	if op.timer != nil {
		op.timer.Stop()
	}
	b.watcher.Unwatch(op.watch)
}

func (b *Broker) deliver(op *pendingOp, status Status, results ResultSet) {
	if err := op.sink.Deliver(status, results); err != nil {
		b.log.Warn("terminal delivery failed",
			zap.Uint32("cmd_id", op.cmdID),
			zap.Object("caller", op.caller),
			zap.Error(err),
		)
	}
	deliveries.WithLabelValues(status.String()).Inc()
}

func (b *Broker) discard(cmdID uint32) {
	if b.recent.Contains(cmdID) {
		b.log.Debug("discarding late result for completed command", zap.Uint32("cmd_id", cmdID))
		discardedResults.WithLabelValues(reasonLate).Inc()
	} else {
		b.log.Warn("discarding result for unknown command", zap.Uint32("cmd_id", cmdID))
		discardedResults.WithLabelValues(reasonUnknown).Inc()
	}
}

// allocCmdID returns the next command id. The counter is strictly
// increasing; on uint32 wraparound ids still outstanding are skipped so
// liveness of an id is always unambiguous.
func (b *Broker) allocCmdID() uint32 {
	for {
		id := b.nextCmdID
		b.nextCmdID++
		if b.nextCmdID == 0 {
			b.nextCmdID = firstCmdID
		}
		if _, live := b.pending[id]; !live {
			return id
		}
	}
}
