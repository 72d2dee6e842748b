package metrics

import (
	"bankdemo/biz/model/mode"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK           = "ok"
	ResultRejected     = "rejected"
	ResultInsufficient = "insufficient_funds"
	ResultError        = "error"
)

var (
	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bankdemo",
		Name:      "logins_total",
		Help:      "Login attempts by security mode and outcome.",
	}, []string{"mode", "result"})

	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bankdemo",
		Name:      "transfers_total",
		Help:      "Transfer attempts by outcome.",
	}, []string{"result"})

	transferredCents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bankdemo",
		Name:      "transferred_cents_total",
		Help:      "Sum of committed transfer amounts in minor units.",
	})
)

func ObserveLogin(m mode.Mode, result string) {
	loginsTotal.WithLabelValues(m.String(), result).Inc()
}

func ObserveTransfer(result string, cents int64) {
	transfersTotal.WithLabelValues(result).Inc()
	if result == ResultOK && cents > 0 {
		transferredCents.Add(float64(cents))
	}
}
