// Package metrics exposes the gateway's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors updated on the upload path.
type Metrics struct {
	registry *prometheus.Registry

	UploadsTotal  *prometheus.CounterVec
	UploadedBytes prometheus.Counter
	FilesSkipped  prometheus.Counter
	LinksIssued   prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.UploadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scindn_uploads_total",
		Help: "Upload requests by outcome.",
	}, []string{"outcome"})

	m.UploadedBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scindn_uploaded_bytes_total",
		Help: "Total bytes accepted into buckets.",
	})

	m.FilesSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scindn_files_skipped_total",
		Help: "Files dropped from manifests (unknown MIME type or store failure).",
	})

	m.LinksIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scindn_links_issued_total",
		Help: "Signed upload links issued.",
	})

	m.registry.MustRegister(m.UploadsTotal, m.UploadedBytes, m.FilesSkipped, m.LinksIssued)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
