package pipeline

import (
	"sync"
	"time"

	"github.com/ameya-jarvis-07/Potholes-Detection/model"
)

// Tally keeps running totals of the predictions served by this process.
type Tally struct {
	mu            sync.Mutex
	name          string
	startTime     time.Time
	stats         model.PredictorStats
	countSum      int64
	confidenceSum int64
}

func NewTally(name string) *Tally {
	return &Tally{
		name:      name,
		startTime: time.Now(),
	}
}

func (t *Tally) Add(p model.Prediction) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stats.Predictions++
	t.countSum += int64(p.Count)
	t.confidenceSum += int64(p.Confidence)

	switch p.Severity {
	case model.SeverityLow:
		t.stats.Low++
	case model.SeverityMedium:
		t.stats.Medium++
	case model.SeverityHigh:
		t.stats.High++
	}
}

func (t *Tally) AddAlert() {
	t.mu.Lock()
	t.stats.Alerts++
	t.mu.Unlock()
}

func (t *Tally) AddError() {
	t.mu.Lock()
	t.stats.Errors++
	t.mu.Unlock()
}

func (t *Tally) Snapshot() model.PredictorStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.stats
	s.Name = t.name
	if s.Predictions > 0 {
		s.AvgCount = float64(t.countSum) / float64(s.Predictions)
		s.AvgConfidence = float64(t.confidenceSum) / float64(s.Predictions)
	} else {
		// Avoid division by zero
		s.AvgCount = 0.0
		s.AvgConfidence = 0.0
	}
	s.Uptime = int64(time.Since(t.startTime).Seconds())
	s.Timestamp = time.Now().Unix()
	return s
}
