package rtt

import (
	"net"

	"github.com/google/uuid"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// Radio submits ranging commands to the underlying hardware. Submit must not
// block: it reports only whether the command was accepted, results arrive
// later through the broker's HandleResults with the same command id, zero or
// one time, possibly never.
type Radio interface {
	Submit(cmdID uint32, peers []Peer) bool
	// Cancel is a best-effort hardware-side abort for a command that will no
	// longer be delivered.
	Cancel(cmdID uint32, addrs []net.HardwareAddr)
}

// PermissionChecker gates access to location data. Queried fresh at every
// delivery, never cached across the submit/deliver gap.
type PermissionChecker interface {
	Allowed(caller Identity) bool
}

// Handle is the liveness handle of a connected client. Done is closed when
// the client goes away.
type Handle interface {
	Done() <-chan struct{}
}

// DeathWatcher tracks client liveness subscriptions. fn fires at most once,
// when done is closed before the watch is cancelled.
type DeathWatcher interface {
	Watch(done <-chan struct{}, fn func()) uuid.UUID
	Unwatch(token uuid.UUID)
}

// ResultSink receives the single terminal delivery for an accepted request.
// results is nil for any status other than StatusSuccess.
type ResultSink interface {
	Deliver(status Status, results ResultSet) error
}
