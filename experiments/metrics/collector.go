package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes a single solver query.
type SearchMetric struct {
	Squares   int // Alive squares at the root
	Duration  time.Duration
	Nodes     int // Positions evaluated, cache hits included
	CacheHits int
	Cached    bool // Whether the transposition cache was enabled
	Found     bool // Whether a winning move was found
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string // Square label, e.g. "b2"
	SearchMetric
}

type GameMetric struct {
	ID             string
	Rows           int
	Columns        int
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(squares int, cached bool)
	AddNode()
	AddCacheHit()
	Complete(found bool) SearchMetric
}

type collector struct {
	squares   int
	cached    bool
	startTime time.Time
	nodes     atomic.Int64
	cacheHits atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(squares int, cached bool) {
	m.startTime = time.Now()
	m.squares = squares
	m.cached = cached
	m.nodes.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete(found bool) SearchMetric {
	return SearchMetric{
		Squares:   m.squares,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		CacheHits: int(m.cacheHits.Load()),
		Cached:    m.cached,
		Found:     found,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(squares int, cached bool) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddCacheHit()                   {}
func (m *dummyCollector) Complete(found bool) SearchMetric {
	return SearchMetric{Found: found}
}
