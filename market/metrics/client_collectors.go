package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOk  = "ok"
	ResultErr = "error"
)

type ClientMetrics struct {
	queries        *prometheus.CounterVec
	executes       *prometheus.CounterVec
	senderBalances *prometheus.GaugeVec
}

// Declare a package-level variable for sync.Once to ensure metrics are registered only once
var clientMetricsRegisterOnce sync.Once

// Declare a variable to hold the instance of ClientMetrics
var clientMetricsInstance *ClientMetrics

func newClientMetrics() *ClientMetrics {
	return &ClientMetrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "market_client_queries_total",
			Help: "Smart queries sent to the contracts",
		}, []string{"contract", "query", "result"}),
		executes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "market_client_executes_total",
			Help: "Execute messages broadcast to the contracts",
		}, []string{"contract", "action", "result"}),
		senderBalances: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "market_client_sender_balance",
			Help: "Current balance of the signer address",
		}, []string{"address", "denom"}),
	}
}

// NewClientMetrics initializes and registers the metrics, using sync.Once to ensure it's done only once
func NewClientMetrics() *ClientMetrics {
	clientMetricsRegisterOnce.Do(func() {
		clientMetricsInstance = newClientMetrics()
		clientMetricsInstance.MustRegister(prometheus.DefaultRegisterer)
	})
	return clientMetricsInstance
}

// NewClientMetricsWithRegistry builds metrics registered to reg only, used in tests.
func NewClientMetricsWithRegistry(reg prometheus.Registerer) *ClientMetrics {
	m := newClientMetrics()
	m.MustRegister(reg)
	return m
}

func (cm *ClientMetrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(cm.queries, cm.executes, cm.senderBalances)
}

func result(err error) string {
	if err != nil {
		return ResultErr
	}
	return ResultOk
}

func (cm *ClientMetrics) RecordQuery(contract, query string, err error) {
	if cm == nil {
		return
	}
	cm.queries.WithLabelValues(contract, query, result(err)).Inc()
}

func (cm *ClientMetrics) RecordExecute(contract, action string, err error) {
	if cm == nil {
		return
	}
	cm.executes.WithLabelValues(contract, action, result(err)).Inc()
}

func (cm *ClientMetrics) RecordSenderBalance(address, denom string, balance float64) {
	if cm == nil {
		return
	}
	cm.senderBalances.WithLabelValues(address, denom).Set(balance)
}
