package clients

import (
	"github.com/openrtt/rttd/metrics"
)

const subsystem = "clients"

var activeWatches = metrics.NewGauge(
	"active_watches",
	subsystem,
	"Number of live client death subscriptions",
	nil).WithLabelValues()
