package radio

import (
	"net"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./hal.go

// ResultCallback receives ranging outcomes for a previously issued command.
// Invoked on the HAL's event goroutine.
type ResultCallback func(cmdID uint32, results []Result)

// HAL is the narrow vendor-hardware contract the controller drives. A
// command accepted by RangeRequest produces zero or one ResultCallback
// invocation with the same command id, at an arbitrary later time.
type HAL interface {
	RegisterEventCallback(cb ResultCallback) error
	RangeRequest(cmdID uint32, configs []Config) error
	RangeCancel(cmdID uint32, addrs []net.HardwareAddr) error
}

// RangingType selects the protocol variant used against a peer.
type RangingType uint8

const (
	OneSided RangingType = iota + 1
	// TwoSided is the 802.11mc FTM variant.
	TwoSided
)

// Preamble used for ranging frames.
type Preamble uint8

const (
	PreambleLegacy Preamble = iota
	PreambleHT
	PreambleVHT
)

// Bandwidth of ranging frames.
type Bandwidth uint8

const (
	Bw20 Bandwidth = iota
	Bw40
	Bw80
	Bw160
)

// Channel describes the peer's operating channel as handed to the HAL.
type Channel struct {
	WidthMhz    int
	CenterFreq  int
	CenterFreq0 int
	CenterFreq1 int
}

// Config is the over-the-HAL description of ranging against a single peer.
type Config struct {
	Addr    net.HardwareAddr
	Type    RangingType
	Channel Channel

	BurstPeriod        int
	NumBursts          int
	FramesPerBurst     int
	RetriesPerRttFrame int
	RetriesPerFtmr     int
	RequestLci         bool
	RequestLcr         bool
	BurstDuration      int

	Preamble  Preamble
	Bandwidth Bandwidth
}

// ResultStatus is the HAL-level outcome for one peer.
type ResultStatus uint8

const (
	ResultOK ResultStatus = iota
	ResultFailed
)

// Result is a single per-peer measurement as reported by the HAL.
type Result struct {
	Addr             net.HardwareAddr
	Status           ResultStatus
	DistanceMm       int
	DistanceStdDevMm int
	Rssi             int
	TimestampUs      int64
}
