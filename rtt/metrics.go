package rtt

import (
	"github.com/openrtt/rttd/metrics"
)

const (
	// subsystem shared by all metrics exposed by this package.
	subsystem = "broker"

	reasonLate    = "late"
	reasonUnknown = "unknown"
)

var (
	outstandingOps = metrics.NewGauge(
		"outstanding_ops",
		subsystem,
		"Number of ranging operations awaiting terminal delivery",
		nil).WithLabelValues()

	deliveries = metrics.NewCounter(
		"deliveries",
		subsystem,
		"Terminal deliveries by status",
		[]string{"status"})

	discardedResults = metrics.NewCounter(
		"discarded_results",
		subsystem,
		"Radio results discarded because the command id is not outstanding",
		[]string{"reason"})

	rangingTimeouts = metrics.NewCounter(
		"timeouts",
		subsystem,
		"Operations failed because the radio never called back",
		nil).WithLabelValues()

	clientDeaths = metrics.NewCounter(
		"client_deaths",
		subsystem,
		"Operations dropped because the client died before delivery",
		nil).WithLabelValues()

	permissionDenials = metrics.NewCounter(
		"permission_denials",
		subsystem,
		"Results withheld because location permission was revoked after submission",
		nil).WithLabelValues()
)
