package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Episodes  int
	Wins      int // Rollouts won by the searching player
	TreeSize  int
	MaxDepth  int
}

type MetricsCollector interface {
	Start()
	AddEpisode(won bool)
	AddNode()
	ObserveDepth(depth int)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	episodes  int
	wins      int
	nodes     int
	maxDepth  int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new search. The root counts as the first node.
func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now(), nodes: 1}
}

func (m *metricsCollector) AddEpisode(won bool) {
	m.episodes++
	if won {
		m.wins++
	}
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) ObserveDepth(depth int) {
	m.maxDepth = max(m.maxDepth, depth)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Episodes:  m.episodes,
		Wins:      m.wins,
		TreeSize:  m.nodes,
		MaxDepth:  m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddEpisode(bool)         {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) ObserveDepth(int)        {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
