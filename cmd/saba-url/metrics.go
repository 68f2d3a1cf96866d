package main

import (
	"io"

	"github.com/jongio/saba-url/urlutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	resultOK                = "ok"
	resultUnsupportedScheme = "unsupported_scheme"
)

// parseMetrics counts parse outcomes on a private registry.
type parseMetrics struct {
	registry    *prometheus.Registry
	total       *prometheus.CounterVec
	defaultPort prometheus.Counter
}

func newParseMetrics() *parseMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &parseMetrics{
		registry: registry,
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saba_url_parse_total",
				Help: "Total number of URLs parsed, by result",
			},
			[]string{"result"},
		),
		defaultPort: factory.NewCounter(prometheus.CounterOpts{
			Name: "saba_url_parse_default_port_total",
			Help: "Parsed URLs without an explicit port that fell back to 80",
		}),
	}
	for _, result := range []string{resultOK, resultUnsupportedScheme} {
		m.total.WithLabelValues(result)
	}
	return m
}

func (m *parseMetrics) observe(parsed urlutil.ParsedURL, err error) {
	if err != nil {
		m.total.WithLabelValues(resultUnsupportedScheme).Inc()
		return
	}
	m.total.WithLabelValues(resultOK).Inc()
	if parsed.UsesDefaultPort() {
		m.defaultPort.Inc()
	}
}

// write renders every collected family in the Prometheus text format.
func (m *parseMetrics) write(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
