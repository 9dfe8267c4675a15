package observability

import (
	"sync"
	"sync/atomic"
)

type StatsSnapshot struct {
	PagesFetched     uint64            `json:"pages_fetched"`
	PlayersExtracted uint64            `json:"players_extracted"`
	RunsCompleted    uint64            `json:"runs_completed"`
	ErrorsTotal      uint64            `json:"errors_total"`
	RunSecondsAvg    float64           `json:"run_seconds_avg"`
	ErrorsByType     map[string]uint64 `json:"errors_by_type,omitempty"`
	ErrorsBySource   map[string]uint64 `json:"errors_by_source,omitempty"`
}

var (
	pagesFetched     uint64
	playersExtracted uint64
	errorsTotal      uint64

	runCount uint64
	runNanos uint64

	statsMu        sync.Mutex
	errorsByType   = map[string]uint64{}
	errorsBySource = map[string]uint64{}
)

func IncPagesFetched(_ string) {
	atomic.AddUint64(&pagesFetched, 1)
}

func AddPlayersExtracted(_ string, n int) {
	if n <= 0 {
		return
	}
	atomic.AddUint64(&playersExtracted, uint64(n))
}

func ObserveRunDuration(seconds float64) {
	atomic.AddUint64(&runCount, 1)
	if seconds > 0 {
		atomic.AddUint64(&runNanos, uint64(seconds*1e9))
	}
}

func IncError(errType, source string) {
	if errType == "" {
		errType = ErrorUnknown
	}
	if source == "" {
		source = "unknown"
	}
	atomic.AddUint64(&errorsTotal, 1)
	statsMu.Lock()
	errorsByType[errType]++
	errorsBySource[source]++
	statsMu.Unlock()
}

func Snapshot() StatsSnapshot {
	statsMu.Lock()
	typeCopy := copyMap(errorsByType)
	sourceCopy := copyMap(errorsBySource)
	statsMu.Unlock()

	count := atomic.LoadUint64(&runCount)
	avg := 0.0
	if count > 0 {
		avg = float64(atomic.LoadUint64(&runNanos)) / float64(count) / 1e9
	}

	return StatsSnapshot{
		PagesFetched:     atomic.LoadUint64(&pagesFetched),
		PlayersExtracted: atomic.LoadUint64(&playersExtracted),
		RunsCompleted:    count,
		ErrorsTotal:      atomic.LoadUint64(&errorsTotal),
		RunSecondsAvg:    avg,
		ErrorsByType:     typeCopy,
		ErrorsBySource:   sourceCopy,
	}
}

func copyMap(src map[string]uint64) map[string]uint64 {
	if len(src) == 0 {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
