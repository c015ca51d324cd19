package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	subsystem = "planet_travel"

	travelCalculationsTotal = "calculations_total"
	planetCacheTotal        = "planet_cache_total"

	// Labels
	resultLabel = "result"
)

var travelCalculationsMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      travelCalculationsTotal,
		Help:      "number of travel time calculations by result",
	},
	[]string{resultLabel},
)

var planetCacheMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      planetCacheTotal,
		Help:      "planet record cache lookups by result (hit, miss, error)",
	},
	[]string{resultLabel},
)

// Register adds the service collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(travelCalculationsMetric, planetCacheMetric)
}

func IncreaseTravelCalculations(result string) {
	travelCalculationsMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func IncreasePlanetCache(result string) {
	planetCacheMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}
