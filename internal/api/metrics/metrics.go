// Package metrics defines all custom Prometheus metrics for the catalog API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register themselves with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GenreMutationsTotal counts successful mutating genre operations.
// Label:
//   - operation: "create", "update", or "delete"
var GenreMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "genre_mutations_total",
		Help:      "Total number of successful genre create/update/delete operations.",
	},
	[]string{"operation"},
)

// AuthRejectionsTotal counts requests turned away by the authorization layer.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected with 401 or 403.",
	},
	[]string{"reason"},
)
