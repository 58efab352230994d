package storage

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
)

type storeMetrics struct {
	reads  *prometheus.CounterVec
	writes *prometheus.CounterVec
}

var (
	storeMetricsOnce sync.Once
	storeRegistry    *storeMetrics
)

func metrics() *storeMetrics {
	storeMetricsOnce.Do(func() {
		storeRegistry = &storeMetrics{
			reads: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "opnet",
				Subsystem: "store",
				Name:      "reads_total",
				Help:      "Total point reads segmented by backend.",
			}, []string{"backend"}),
			writes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "opnet",
				Subsystem: "store",
				Name:      "writes_total",
				Help:      "Total point writes segmented by backend.",
			}, []string{"backend"}),
		}
		prometheus.MustRegister(storeRegistry.reads, storeRegistry.writes)
	})
	return storeRegistry
}

// InstrumentedStore wraps a Store and counts point reads and writes. The
// wrapped store keeps its panic-on-failure semantics untouched.
type InstrumentedStore struct {
	inner   Store
	backend string
}

// Instrument decorates store with prometheus counters labelled by the given
// backend name.
func Instrument(store Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{inner: store, backend: backend}
}

func (s *InstrumentedStore) GetStorageAt(pointer uint16, subKey common.Hash) common.Hash {
	metrics().reads.WithLabelValues(s.backend).Inc()
	return s.inner.GetStorageAt(pointer, subKey)
}

func (s *InstrumentedStore) SetStorageAt(pointer uint16, subKey common.Hash, value common.Hash) {
	metrics().writes.WithLabelValues(s.backend).Inc()
	s.inner.SetStorageAt(pointer, subKey, value)
}
