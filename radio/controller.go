// Package radio adapts the broker's peer descriptors to the vendor HAL's
// ranging command format and feeds HAL result events back into the broker.
// It is stateless beyond the one-time event-callback registration.
package radio

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"

	"github.com/openrtt/rttd/rtt"
)

var errNoValidPeers = errors.New("no peer produced a valid ranging config")

// ResultHandler consumes converted HAL results; satisfied by *rtt.Broker.
type ResultHandler interface {
	HandleResults(cmdID uint32, results rtt.ResultSet)
}

type Opt func(*Controller)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Controller) {
		c.log = logger
	}
}

// Controller implements the broker's Radio interface on top of a HAL.
type Controller struct {
	log *zap.Logger
	hal HAL

	mu         sync.Mutex
	handler    ResultHandler
	registered bool
}

func NewController(hal HAL, opts ...Opt) *Controller {
	c := &Controller{
		log: zap.NewNop(),
		hal: hal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetHandler attaches the consumer of result events. Must be called before
// the first Submit.
func (c *Controller) SetHandler(handler ResultHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

// Submit issues a ranging command to the HAL. Peers that cannot be expressed
// as a valid HAL config are skipped with a warning; the caller only receives
// hardware results for valid peers and reconciles the rest.
func (c *Controller) Submit(cmdID uint32, peers []rtt.Peer) bool {
	if !c.ensureCallback() {
		return false
	}
	configs := c.configsFromPeers(peers)
	if len(configs) == 0 {
		c.log.Warn("dropping ranging command", zap.Uint32("cmd_id", cmdID),
			zap.Error(errNoValidPeers))
		return false
	}
	if err := c.hal.RangeRequest(cmdID, configs); err != nil {
		c.log.Warn("hal rejected range request", zap.Uint32("cmd_id", cmdID), zap.Error(err))
		return false
	}
	return true
}

// Cancel aborts a command on the HAL side, best effort.
func (c *Controller) Cancel(cmdID uint32, addrs []net.HardwareAddr) {
	if err := c.hal.RangeCancel(cmdID, addrs); err != nil {
		c.log.Warn("hal range cancel failed", zap.Uint32("cmd_id", cmdID), zap.Error(err))
	}
}

func (c *Controller) ensureCallback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registered {
		return true
	}
	if err := c.hal.RegisterEventCallback(c.onResults); err != nil {
		c.log.Error("cannot register hal event callback", zap.Error(err))
		return false
	}
	c.registered = true
	return true
}

func (c *Controller) onResults(cmdID uint32, halResults []Result) {
	results := make(rtt.ResultSet, 0, len(halResults))
	for _, hr := range halResults {
		status := rtt.StatusFail
		if hr.Status == ResultOK {
			status = rtt.StatusSuccess
		}
		results = append(results, rtt.RangingResult{
			Addr:             hr.Addr,
			Status:           status,
			DistanceMm:       hr.DistanceMm,
			DistanceStdDevMm: hr.DistanceStdDevMm,
			Rssi:             hr.Rssi,
			TimestampUs:      hr.TimestampUs,
		})
	}

	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	if handler == nil {
		c.log.Error("hal results with no handler attached", zap.Uint32("cmd_id", cmdID))
		return
	}
	handler.HandleResults(cmdID, results)
}

func (c *Controller) configsFromPeers(peers []rtt.Peer) []Config {
	configs := make([]Config, 0, len(peers))
	for i := range peers {
		config, err := configFromPeer(&peers[i])
		if err != nil {
			c.log.Warn("skipping peer with invalid configuration",
				zap.Object("peer", &peers[i]), zap.Error(err))
			continue
		}
		configs = append(configs, config)
	}
	return configs
}

func configFromPeer(peer *rtt.Peer) (Config, error) {
	if len(peer.Addr) != 6 {
		return Config{}, fmt.Errorf("unexpected address length %d", len(peer.Addr))
	}
	widthMhz, err := channelWidthMhz(peer.Width)
	if err != nil {
		return Config{}, err
	}
	bw, err := bandwidth(peer.Width)
	if err != nil {
		return Config{}, err
	}

	rangingType := OneSided
	if peer.TwoSided {
		rangingType = TwoSided
	}
	preamble := PreambleHT
	if peer.FrequencyMhz > 5000 {
		preamble = PreambleVHT
	}

	config := Config{
		Addr: peer.Addr,
		Type: rangingType,
		Channel: Channel{
			WidthMhz:   widthMhz,
			CenterFreq: peer.FrequencyMhz,
		},
		FramesPerBurst: 8,
		BurstDuration:  15,
		Preamble:       preamble,
		Bandwidth:      bw,
	}
	if peer.CenterFreq0 > 0 {
		config.Channel.CenterFreq0 = peer.CenterFreq0
	}
	if peer.CenterFreq1 > 0 {
		config.Channel.CenterFreq1 = peer.CenterFreq1
	}
	return config, nil
}

func channelWidthMhz(width rtt.ChannelWidth) (int, error) {
	switch width {
	case rtt.Width20:
		return 20, nil
	case rtt.Width40:
		return 40, nil
	case rtt.Width80:
		return 80, nil
	case rtt.Width160, rtt.Width80Plus80:
		return 160, nil
	default:
		return 0, fmt.Errorf("bad channel width %d", width)
	}
}

func bandwidth(width rtt.ChannelWidth) (Bandwidth, error) {
	switch width {
	case rtt.Width20:
		return Bw20, nil
	case rtt.Width40:
		return Bw40, nil
	case rtt.Width80:
		return Bw80, nil
	case rtt.Width160, rtt.Width80Plus80:
		return Bw160, nil
	default:
		return 0, fmt.Errorf("bad channel width %d", width)
	}
}
