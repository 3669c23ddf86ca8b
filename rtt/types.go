package rtt

import (
	"net"

	"go.uber.org/zap/zapcore"
)

// Status is the terminal status of a ranging operation, and doubles as the
// per-peer status inside a ResultSet.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusFail
	// StatusFailNotAvailable reports that ranging is not available at all
	// (radio disabled), as opposed to a failed attempt.
	StatusFailNotAvailable
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFail:
		return "fail"
	case StatusFailNotAvailable:
		return "not available"
	default:
		return "unknown"
	}
}

// ChannelWidth of a peer's operating channel.
type ChannelWidth uint8

const (
	Width20 ChannelWidth = iota
	Width40
	Width80
	Width160
	Width80Plus80
)

// Peer describes a single ranging target. Peers are identified by MAC
// address; the broker never deduplicates them, identity within a request is
// positional.
type Peer struct {
	Addr net.HardwareAddr
	// TwoSided is set when the peer advertises support for the two-sided
	// (802.11mc) protocol variant.
	TwoSided bool

	FrequencyMhz int
	Width        ChannelWidth
	CenterFreq0  int
	CenterFreq1  int
}

func (p *Peer) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("addr", p.Addr.String())
	encoder.AddBool("two sided", p.TwoSided)
	encoder.AddInt("freq mhz", p.FrequencyMhz)
	return nil
}

// RangingRequest is an ordered sequence of peers to range against. Immutable
// once submitted: peer i corresponds to result i in the terminal delivery.
type RangingRequest struct {
	Peers []Peer
}

func (r *RangingRequest) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	return encoder.AddArray("peers", zapcore.ArrayMarshalerFunc(
		func(aenc zapcore.ArrayEncoder) error {
			for i := range r.Peers {
				if err := aenc.AppendObject(&r.Peers[i]); err != nil {
					return err
				}
			}
			return nil
		}))
}

// RangingResult is the outcome for a single peer. Measurement fields are
// meaningful only when Status is StatusSuccess.
type RangingResult struct {
	Addr             net.HardwareAddr
	Status           Status
	DistanceMm       int
	DistanceStdDevMm int
	Rssi             int
	TimestampUs      int64
}

func (r *RangingResult) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("addr", r.Addr.String())
	encoder.AddString("status", r.Status.String())
	encoder.AddInt("distance mm", r.DistanceMm)
	encoder.AddInt("rssi", r.Rssi)
	return nil
}

// ResultSet is an ordered sequence of per-peer results. A delivered set is
// always aligned to the originating request's peer order and has exactly the
// same length.
type ResultSet []RangingResult

// Identity of the calling client, captured at submission time.
type Identity struct {
	UID     uint32
	Package string
}

func (id Identity) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint32("uid", id.UID)
	encoder.AddString("package", id.Package)
	return nil
}
