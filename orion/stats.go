package orion

import (
	"log/slog"
	"time"
)

// StatsWindow is the number of frame intervals summarized in one FrameReport.
const StatsWindow = 60

// FrameStats records the intervals between presented frames.
type FrameStats struct {
	// Frames counts every recorded frame.
	Frames uint64

	// Delta is the interval to the previous frame.
	Delta time.Duration

	intervals [StatsWindow]time.Duration
	filled    int
	last      time.Time
}

// FrameReport summarizes one full window of frame intervals.
type FrameReport struct {
	Frames uint64
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Record adds a frame presented at now. Once StatsWindow intervals are
// collected it returns their summary and starts a new window.
func (s *FrameStats) Record(now time.Time) (FrameReport, bool) {
	first := s.Frames == 0

	s.Frames += 1

	prev := s.last
	s.last = now

	if first {
		return FrameReport{}, false
	}

	s.Delta = now.Sub(prev)

	s.intervals[s.filled] = s.Delta
	s.filled += 1

	if s.filled < len(s.intervals) {
		return FrameReport{}, false
	}

	s.filled = 0

	return summarize(s.Frames, s.intervals[:]), true
}

func summarize(frames uint64, intervals []time.Duration) FrameReport {
	report := FrameReport{Frames: frames, Min: intervals[0], Max: intervals[0]}

	var total time.Duration
	for _, d := range intervals {
		total += d
		report.Min = min(report.Min, d)
		report.Max = max(report.Max, d)
	}

	report.Mean = total / time.Duration(len(intervals))

	return report
}

// FPS derived from the mean interval.
func (r FrameReport) FPS() float64 {
	if r.Mean <= 0 {
		return 0
	}

	return 1 / r.Mean.Seconds()
}

func (r FrameReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frames", r.Frames),
		slog.Float64("fps", r.FPS()),
		slog.Duration("mean", r.Mean),
		slog.Duration("min", r.Min),
		slog.Duration("max", r.Max),
	)
}
