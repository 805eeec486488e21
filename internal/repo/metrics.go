package repo

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// daoOps counts DAO calls by operation and outcome ("ok", "invalid_uuid",
// "other"). Both label sets are fixed, so cardinality stays bounded.
var daoOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "qa_dao_operations_total",
		Help: "Total number of DAO operations by outcome.",
	},
	[]string{"op", "outcome"},
)

func init() {
	prometheus.MustRegister(daoOps)
}

// observe records the outcome of op.
func observe(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = KindOther.String()
		var dbErr *DBError
		if errors.As(err, &dbErr) {
			outcome = dbErr.Kind.String()
		}
	}
	daoOps.WithLabelValues(op, outcome).Inc()
}
