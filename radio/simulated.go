package radio

import (
	"errors"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var errNoCallback = errors.New("no event callback registered")

type SimOpt func(*Simulated)

func SimWithLogger(logger *zap.Logger) SimOpt {
	return func(s *Simulated) {
		s.log = logger
	}
}

func SimWithClock(clock clockwork.Clock) SimOpt {
	return func(s *Simulated) {
		s.clock = clock
	}
}

// SimWithLatency sets the delay between a range request and its result
// callback.
func SimWithLatency(latency time.Duration) SimOpt {
	return func(s *Simulated) {
		s.latency = latency
	}
}

// SimWithLossRate makes each peer's measurement go missing with probability
// p, exercising partial-result reconciliation downstream.
func SimWithLossRate(p float64) SimOpt {
	return func(s *Simulated) {
		s.lossRate = p
	}
}

func SimWithSeed(seed int64) SimOpt {
	return func(s *Simulated) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// Simulated is an in-process software HAL producing synthetic measurements
// after a configurable latency. Used for bring-up of the daemon without
// ranging-capable hardware, and by tests.
type Simulated struct {
	log      *zap.Logger
	clock    clockwork.Clock
	latency  time.Duration
	lossRate float64

	mu       sync.Mutex
	cb       ResultCallback
	rng      *rand.Rand
	inflight map[uint32]clockwork.Timer
}

func NewSimulated(opts ...SimOpt) *Simulated {
	s := &Simulated{
		log:      zap.NewNop(),
		clock:    clockwork.NewRealClock(),
		latency:  100 * time.Millisecond,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		inflight: make(map[uint32]clockwork.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulated) RegisterEventCallback(cb ResultCallback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cb = cb
	return nil
}

func (s *Simulated) RangeRequest(cmdID uint32, configs []Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cb == nil {
		return errNoCallback
	}

	// measurements are synthesized up front so cancellation only has to stop
	// the timer
	results := make([]Result, 0, len(configs))
	for _, config := range configs {
		if s.lossRate > 0 && s.rng.Float64() < s.lossRate {
			continue
		}
		results = append(results, Result{
			Addr:             config.Addr,
			Status:           ResultOK,
			DistanceMm:       2000 + s.rng.Intn(80000),
			DistanceStdDevMm: 100 + s.rng.Intn(400),
			Rssi:             -40 - s.rng.Intn(40),
			TimestampUs:      s.clock.Now().UnixMicro(),
		})
	}

	cb := s.cb
	s.inflight[cmdID] = s.clock.AfterFunc(s.latency, func() {
		s.mu.Lock()
		delete(s.inflight, cmdID)
		s.mu.Unlock()
		cb(cmdID, results)
	})
	return nil
}

func (s *Simulated) RangeCancel(cmdID uint32, _ []net.HardwareAddr) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.inflight[cmdID]; ok {
		timer.Stop()
		delete(s.inflight, cmdID)
		s.log.Debug("cancelled simulated ranging", zap.Uint32("cmd_id", cmdID))
	}
	return nil
}
