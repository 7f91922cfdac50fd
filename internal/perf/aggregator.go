package perf

import "sync"

// TemplateStats holds aggregated outcomes for a single question template.
type TemplateStats struct {
	TimesServed   int     `json:"times_served" db:"times_served"`
	TimesCorrect  int     `json:"times_correct" db:"times_correct"`
	AverageTimeMs float64 `json:"average_time_ms" db:"average_time_ms"`
}

// Accuracy returns the fraction of correct answers, or 0 if the template
// has never been served.
func (s TemplateStats) Accuracy() float64 {
	if s.TimesServed == 0 {
		return 0
	}
	return float64(s.TimesCorrect) / float64(s.TimesServed)
}

// Apply folds one outcome into the stats and returns the result.
func (s TemplateStats) Apply(correct bool, responseTimeMs int) TemplateStats {
	prev := s.TimesServed
	s.TimesServed++
	if correct {
		s.TimesCorrect++
	}
	if prev == 0 {
		s.AverageTimeMs = float64(responseTimeMs)
	} else {
		s.AverageTimeMs = (s.AverageTimeMs*float64(prev) + float64(responseTimeMs)) / float64(s.TimesServed)
	}
	return s
}

// Aggregator keeps per-template stats in memory. Safe for concurrent use.
type Aggregator struct {
	mu    sync.RWMutex
	stats map[string]TemplateStats
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{stats: make(map[string]TemplateStats)}
}

// Load replaces the current stats with a previously persisted set.
func (a *Aggregator) Load(stats map[string]TemplateStats) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats = make(map[string]TemplateStats, len(stats))
	for id, s := range stats {
		a.stats[id] = s
	}
}

// RecordOutcome folds an answer into the stats for templateID. Outcomes
// without a template (vocabulary drills) are ignored. Returns the updated
// stats and whether anything was recorded.
func (a *Aggregator) RecordOutcome(templateID string, correct bool, responseTimeMs int) (TemplateStats, bool) {
	if templateID == "" {
		return TemplateStats{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.stats[templateID].Apply(correct, responseTimeMs)
	a.stats[templateID] = s
	return s, true
}

// Stats returns a copy of all template stats.
func (a *Aggregator) Stats() map[string]TemplateStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]TemplateStats, len(a.stats))
	for id, s := range a.stats {
		out[id] = s
	}
	return out
}

// Get returns the stats for one template.
func (a *Aggregator) Get(templateID string) (TemplateStats, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.stats[templateID]
	return s, ok
}

// Reset drops all stats.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats = make(map[string]TemplateStats)
}
