// Package metrics provides observability for the island server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DayTicks counts completed day-advance settlements.
	DayTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "island_day_ticks_total",
		Help: "Total day-advance settlements run.",
	})

	// ActionsResolved counts resolved verb/target interactions by verb.
	ActionsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "island_actions_total",
		Help: "Total verb interactions resolved.",
	}, []string{"verb"})

	// DialogueEnds counts terminated conversations.
	DialogueEnds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "island_dialogue_ends_total",
		Help: "Total conversations terminated.",
	})

	// QuizCompletions counts fully answered quizzes.
	QuizCompletions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "island_quiz_completions_total",
		Help: "Total quizzes completed.",
	})

	// WSConnections tracks active websocket clients.
	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "island_ws_connections",
		Help: "Active WebSocket connections.",
	})

	// WSMessages counts websocket traffic by direction.
	WSMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "island_ws_messages_total",
		Help: "Total WebSocket messages.",
	}, []string{"direction"})

	// EventWriteErrors counts failed transcript writes.
	EventWriteErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "island_event_write_errors_total",
		Help: "Total transcript persistence failures.",
	})
)

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
