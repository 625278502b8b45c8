package engine

import "chomp/experiments/metrics"

type Engine interface {
	// Run plays a game until the poison square is taken
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
