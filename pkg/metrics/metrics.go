// Package metrics holds the application Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Entity labels of EntitiesCreatedTotal.
const (
	EntityUser           = "user"
	EntityCryptocurrency = "cryptocurrency"
	EntityUserAsset      = "user_asset"
	EntityTransaction    = "transaction"
	EntityOrder          = "order"
)

// EntitiesCreatedTotal counts rows inserted into the store.
var EntitiesCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "coinwallet",
		Name:      "entities_created_total",
		Help:      "Total number of entities created in the store.",
	},
	[]string{"entity"},
)

// MustRegister registers the collectors with the default registry.
func MustRegister() {
	prometheus.MustRegister(EntitiesCreatedTotal)
}

// EntityCreated records one inserted entity.
func EntityCreated(entity string) {
	EntitiesCreatedTotal.WithLabelValues(entity).Inc()
}
