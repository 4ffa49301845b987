package metrics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestConfigAddress(t *testing.T) {
	addr, err := DefaultConfig().Address()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:2112", addr)

	_, err = (&Config{Host: "localhost", Port: 1}).Address()
	require.Error(t, err)

	_, err = (&Config{Host: "127.0.0.1", Port: 70000}).Address()
	require.Error(t, err)
}

func TestClientMetrics(t *testing.T) {
	m := NewClientMetricsWithRegistry(prometheus.NewRegistry())

	m.RecordQuery("marketplace", "details", nil)
	m.RecordQuery("marketplace", "details", nil)
	m.RecordQuery("marketplace", "details", errors.New("boom"))
	m.RecordExecute("cw721", "approve", nil)
	m.RecordSenderBalance("juno1abc", "ujuno", 42)

	require.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("marketplace", "details", ResultOk)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("marketplace", "details", ResultErr)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.executes.WithLabelValues("cw721", "approve", ResultOk)))
	require.Equal(t, 42.0, testutil.ToFloat64(m.senderBalances.WithLabelValues("juno1abc", "ujuno")))
}

func TestNilClientMetrics(t *testing.T) {
	var m *ClientMetrics
	m.RecordQuery("a", "b", nil)
	m.RecordExecute("a", "b", nil)
	m.RecordSenderBalance("a", "b", 1)
}
