// Package metrics defines all custom Prometheus metrics for the Innovest API.
// It is the single source of truth for metric names, labels, and help strings.
//
// All metrics register themselves with the default registry via promauto, so
// importing the package is enough; the /metrics endpoint serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "innovest"

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "investor" or "innovator"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - portal: "standard" or "admin"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by entry point and result.",
	},
	[]string{"portal", "result"},
)

// DecisionsTotal counts admin approval decisions.
// Label:
//   - verdict: "approved" or "rejected"
var DecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_decisions_total",
		Help:      "Total number of admin approval decisions, by verdict.",
	},
	[]string{"verdict"},
)

// LikeTogglesTotal counts like toggles on projects.
// Label:
//   - action: "liked" or "unliked"
var LikeTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_like_toggles_total",
		Help:      "Total number of like toggles on projects, by resulting action.",
	},
	[]string{"action"},
)

// InterestTotal counts first-time interest registrations on projects.
var InterestTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_interest_total",
		Help:      "Total number of first-time investor interest registrations.",
	},
)

// MailsTotal counts outbound notification outcomes.
// Label:
//   - result: "sent", "error", "deduplicated", or "dropped"
var MailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_mails_total",
		Help:      "Total number of outbound notification mails, by delivery result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks messages waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of mails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
