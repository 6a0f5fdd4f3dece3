package status

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gravwell"

// Collector exports a Registry to Prometheus
// Metric names are derived from registry keys at scrape time
type Collector struct {
	reg       *Registry
	lastEvent *prometheus.Desc
}

// NewCollector wraps reg for registration with a prometheus.Registerer
func NewCollector(reg *Registry) *Collector {
	return &Collector{
		reg: reg,
		lastEvent: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", KeyLastEvent),
			"Most recent projectile transition",
			[]string{"event"}, nil,
		),
	}
}

// Describe sends nothing: the metric set grows with the registry, so the collector is unchecked
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect reads every registry metric
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		vt, name := prometheus.GaugeValue, key
		if counterKeys[key] {
			vt, name = prometheus.CounterValue, key+"_total"
		}
		ch <- prometheus.MustNewConstMetric(c.desc(name), vt, float64(v.Load()))
	})
	c.reg.Floats.Range(func(key string, v *AtomicFloat) {
		ch <- prometheus.MustNewConstMetric(c.desc(key), prometheus.GaugeValue, v.Get())
	})
	if ev := c.reg.Strings.Get(KeyLastEvent).Load(); ev != "" {
		ch <- prometheus.MustNewConstMetric(c.lastEvent, prometheus.GaugeValue, 1, ev)
	}
}

func (c *Collector) desc(name string) *prometheus.Desc {
	return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), "gravwell "+name, nil, nil)
}
