package metrics

import (
	"net/http"

	"github.com/huseyinbabal/benchmarks/utils/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler exposes the default Prometheus registry. The default Go collector
// reports runtime gauges such as go_goroutines, which is how goroutine growth
// is observed while the benchmark is under load.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ListenAndServe blocks serving the scrape endpoint on its own listener so
// scrapes never touch the benchmark port.
func ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	log.With(zap.String("addr", addr)).Info("Prometheus metrics server starting")
	return http.ListenAndServe(addr, mux)
}
