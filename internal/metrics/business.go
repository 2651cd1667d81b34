package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roomsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swap_rooms_created_total",
			Help: "Total number of rooms created",
		},
	)

	roomsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swap_rooms_active",
			Help: "Number of currently active rooms",
		},
	)

	participantsJoinedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swap_participants_joined_total",
			Help: "Total number of successful room joins (host included)",
		},
	)

	swapsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swap_swaps_recorded_total",
			Help: "Total number of swap-history entries recorded",
		},
		[]string{"type"},
	)

	messagesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swap_messages_sent_total",
			Help: "Total number of in-room messages stored",
		},
	)
)

// RecordRoomCreated increments the room creation counter and active gauge
func RecordRoomCreated() {
	roomsCreatedTotal.Inc()
	roomsActive.Inc()
	participantsJoinedTotal.Inc()
}

// RecordRoomEnded decrements the active room gauge
func RecordRoomEnded() {
	roomsActive.Dec()
}

// RecordJoin increments the join counter
func RecordJoin() {
	participantsJoinedTotal.Inc()
}

// RecordSwap increments the swap counter for the given type
func RecordSwap(swapType string) {
	swapsRecordedTotal.WithLabelValues(swapType).Inc()
}

// RecordMessageSent increments the message counter
func RecordMessageSent() {
	messagesSentTotal.Inc()
}
