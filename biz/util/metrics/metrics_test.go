package metrics

import (
	"testing"

	"bankdemo/biz/model/mode"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLogin(t *testing.T) {
	before := testutil.ToFloat64(loginsTotal.WithLabelValues("vuln", ResultOK))
	ObserveLogin(mode.Vuln, ResultOK)
	assert.Equal(t, before+1, testutil.ToFloat64(loginsTotal.WithLabelValues("vuln", ResultOK)))
}

func TestObserveTransfer(t *testing.T) {
	before := testutil.ToFloat64(transferredCents)
	ObserveTransfer(ResultOK, 4000)
	ObserveTransfer(ResultInsufficient, 7000)
	assert.Equal(t, before+4000, testutil.ToFloat64(transferredCents))
}

// The handler behind /metrics serves the default registry.
func TestDefaultRegistry(t *testing.T) {
	ObserveLogin(mode.Secure, ResultRejected)
	ObserveTransfer(ResultOK, 1)

	n, err := testutil.GatherAndCount(prometheus.DefaultGatherer,
		"bankdemo_logins_total", "bankdemo_transfers_total", "bankdemo_transferred_cents_total")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, n, 3)
}
