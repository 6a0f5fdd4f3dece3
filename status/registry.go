package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/vmath"
)

// Metric keys
const (
	KeyLaunched     = "launched"
	KeyCrashed      = "crashed"
	KeyEscaped      = "escaped"
	KeyOrbited      = "orbited"
	KeyTicks        = "ticks"
	KeyLive         = "live"
	KeyScore        = "score"
	KeyOldestFlight = "oldest_flight_seconds"
	KeyMaxDistance  = "max_distance"
	KeyLastEvent    = "last_event"
)

// counterKeys are monotonic over a session
var counterKeys = map[string]bool{
	KeyLaunched: true,
	KeyCrashed:  true,
	KeyEscaped:  true,
	KeyOrbited:  true,
	KeyTicks:    true,
}

// Registry is the metrics facade fed by the simulation loop
// Written by the loop goroutine, read concurrently by the HUD and the metrics endpoint
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates a registry with every simulation metric registered at zero
func NewRegistry() *Registry {
	r := &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
	for _, k := range []string{KeyLaunched, KeyCrashed, KeyEscaped, KeyOrbited, KeyTicks, KeyLive} {
		r.Ints.Get(k)
	}
	for _, k := range []string{KeyScore, KeyOldestFlight, KeyMaxDistance} {
		r.Floats.Get(k)
	}
	r.Strings.Get(KeyLastEvent)
	return r
}

// ObserveLaunch counts a launch
func (r *Registry) ObserveLaunch() {
	r.Ints.Get(KeyLaunched).Add(1)
}

// Observe counts a lifecycle transition; suitable as an engine.Simulation hook
func (r *Registry) Observe(tr engine.Transition) {
	r.Ints.Get(tr.To.String()).Add(1)
	r.Strings.Get(KeyLastEvent).Store(fmt.Sprintf("#%d %s %.1fs", tr.ID, tr.To, tr.FlightTime))
}

// Sample records the current simulation gauges, once per frame
func (r *Registry) Sample(sim *engine.Simulation) {
	live := sim.Projectiles()
	r.Ints.Get(KeyTicks).Store(int64(sim.TickCount()))
	r.Ints.Get(KeyLive).Store(int64(len(live)))
	r.Floats.Get(KeyScore).Set(sim.Score())

	oldest := 0.0
	if p := sim.Oldest(); p != nil {
		oldest = p.FlightTime
	}
	r.Floats.Get(KeyOldestFlight).Set(oldest)

	center := sim.Config().Center
	maxDist := r.Floats.Get(KeyMaxDistance)
	for _, p := range live {
		maxDist.Max(vmath.Distance(p.Position, center))
	}
}

// Count returns a counter or gauge value by key
func (r *Registry) Count(key string) int64 {
	return r.Ints.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
