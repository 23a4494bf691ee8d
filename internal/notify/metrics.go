package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notifications = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "clinicdesk",
		Name:      "notifications_total",
		Help:      "Confirmation notifications by channel and outcome.",
	},
	[]string{"channel", "status"},
)

func observe(channel string, out Outcome) {
	notifications.WithLabelValues(channel, string(out.Status)).Inc()
}
