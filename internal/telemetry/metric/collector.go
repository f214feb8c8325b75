package metric

import "github.com/prometheus/client_golang/prometheus"

// SizeFunc reports the current number of objects, groups and variables.
type SizeFunc func() (objects, groups, variables int)

// TableCollector reports symbol table sizes at scrape time.
type TableCollector struct {
	sizes SizeFunc

	objects   *prometheus.Desc
	groups    *prometheus.Desc
	variables *prometheus.Desc
}

// NewTableCollector creates a collector backed by sizes.
func NewTableCollector(sizes SizeFunc) *TableCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "tables", name), help, nil, nil)
	}
	return &TableCollector{
		sizes:     sizes,
		objects:   desc("objects", "Number of defined objects"),
		groups:    desc("groups", "Number of defined groups"),
		variables: desc("variables", "Number of defined variables"),
	}
}

// Describe implements prometheus.Collector.
func (c *TableCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.objects
	ch <- c.groups
	ch <- c.variables
}

// Collect implements prometheus.Collector.
func (c *TableCollector) Collect(ch chan<- prometheus.Metric) {
	o, g, v := c.sizes()
	ch <- prometheus.MustNewConstMetric(c.objects, prometheus.GaugeValue, float64(o))
	ch <- prometheus.MustNewConstMetric(c.groups, prometheus.GaugeValue, float64(g))
	ch <- prometheus.MustNewConstMetric(c.variables, prometheus.GaugeValue, float64(v))
}
