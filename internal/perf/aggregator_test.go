package perf

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateStats_Accuracy(t *testing.T) {
	assert.Equal(t, 0.0, TemplateStats{}.Accuracy())
	assert.InDelta(t, 0.75, TemplateStats{TimesServed: 4, TimesCorrect: 3}.Accuracy(), 1e-9)
}

func TestRecordOutcome_IncrementalMean(t *testing.T) {
	a := NewAggregator()

	s, ok := a.RecordOutcome("t1", true, 1000)
	require.True(t, ok)
	assert.Equal(t, 1, s.TimesServed)
	assert.Equal(t, 1, s.TimesCorrect)
	assert.Equal(t, 1000.0, s.AverageTimeMs)

	s, _ = a.RecordOutcome("t1", false, 2000)
	assert.Equal(t, 2, s.TimesServed)
	assert.Equal(t, 1, s.TimesCorrect)
	assert.Equal(t, 1500.0, s.AverageTimeMs)

	s, _ = a.RecordOutcome("t1", true, 3000)
	assert.Equal(t, 3, s.TimesServed)
	assert.Equal(t, 2000.0, s.AverageTimeMs)
}

func TestRecordOutcome_IgnoresEmptyTemplate(t *testing.T) {
	a := NewAggregator()
	_, ok := a.RecordOutcome("", true, 500)
	assert.False(t, ok)
	assert.Empty(t, a.Stats())
}

func TestReplayAfterResetIsIdempotent(t *testing.T) {
	type event struct {
		id      string
		correct bool
		ms      int
	}
	events := []event{
		{"a", true, 1200}, {"b", false, 800}, {"a", false, 4000},
		{"", true, 10}, {"c", true, 300}, {"a", true, 900},
	}

	a := NewAggregator()
	replay := func() map[string]TemplateStats {
		for _, e := range events {
			a.RecordOutcome(e.id, e.correct, e.ms)
		}
		return a.Stats()
	}

	first := replay()
	a.Reset()
	second := replay()
	assert.Equal(t, first, second)
	assert.Len(t, second, 3)
}

func TestStatsReturnsCopy(t *testing.T) {
	a := NewAggregator()
	a.RecordOutcome("t1", true, 100)
	snapshot := a.Stats()
	snapshot["t1"] = TemplateStats{TimesServed: 99}

	got, ok := a.Get("t1")
	require.True(t, ok)
	assert.Equal(t, 1, got.TimesServed)
}

func TestLoadSeedsStats(t *testing.T) {
	a := NewAggregator()
	a.Load(map[string]TemplateStats{"t1": {TimesServed: 10, TimesCorrect: 6, AverageTimeMs: 2000}})

	s, _ := a.RecordOutcome("t1", true, 4200)
	assert.Equal(t, 11, s.TimesServed)
	assert.Equal(t, 7, s.TimesCorrect)
	assert.InDelta(t, 2200.0, s.AverageTimeMs, 1e-9)
}

func TestRecordOutcome_Concurrent(t *testing.T) {
	a := NewAggregator()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.RecordOutcome("t1", true, 100)
		}()
	}
	wg.Wait()
	s, _ := a.Get("t1")
	assert.Equal(t, 50, s.TimesServed)
	assert.Equal(t, 100.0, s.AverageTimeMs)
}
