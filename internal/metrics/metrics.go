// Package metrics collects and exposes Prometheus metrics for the auth and
// script-delivery paths.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts auth and script-fetch outcomes.
type Collector struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	rateLimited   *prometheus.CounterVec
	scriptFetches *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avoura_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avoura_registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avoura_rate_limited_total",
			Help: "Requests rejected by the rate limiter, by action.",
		}, []string{"action"}),
		scriptFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avoura_script_fetches_total",
			Help: "Protected script fetches by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.logins,
		c.registrations,
		c.rateLimited,
		c.scriptFetches,
	)

	return c
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRateLimited(action string) {
	c.rateLimited.WithLabelValues(action).Inc()
}

func (c *Collector) RecordScriptFetch(outcome string) {
	c.scriptFetches.WithLabelValues(outcome).Inc()
}

// Handler returns the /metrics endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
