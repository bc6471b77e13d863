package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes used by RequestsTotal.
const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simai_requests_total",
		Help: "Requests issued to the infraction service, by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	InfractionsShown = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "simai_infractions_shown",
		Help: "Infractions currently rendered in the list after filtering",
	})

	NoticesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simai_notices_total",
		Help: "Notices shown in the alert area, by style",
	}, []string{"style"})

	NotificationsAlerted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "simai_notifications_alerted_total",
		Help: "Notifications surfaced as alerts",
	})

	NotificationWatermark = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "simai_notification_watermark",
		Help: "Timestamp of the last notification processed (lastCheck)",
	})

	TicksSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simai_ticks_skipped_total",
		Help: "Repeater ticks skipped because the previous run was still in flight",
	}, []string{"task"})

	ControlRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simai_control_requests_total",
		Help: "Requests served by the local control API",
	}, []string{"method", "route", "status"})
)
