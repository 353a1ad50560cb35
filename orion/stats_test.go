package orion

import (
	"log/slog"
	"testing"
	"time"
)

func TestFrameStatsReportsFullWindow(t *testing.T) {
	var stats FrameStats

	now := time.Unix(0, 0)

	// the first frame has no interval
	if _, ok := stats.Record(now); ok {
		t.Fatal("report after the first frame")
	}

	for idx := range StatsWindow {
		// intervals of 10ms, 20ms, 10ms, 20ms, ...
		now = now.Add(time.Duration(10*(1+idx%2)) * time.Millisecond)

		report, ok := stats.Record(now)
		if idx < StatsWindow-1 {
			if ok {
				t.Fatalf("report after %d intervals", idx+1)
			}

			continue
		}

		if !ok {
			t.Fatal("no report after a full window")
		}

		want := FrameReport{
			Frames: StatsWindow + 1,
			Mean:   15 * time.Millisecond,
			Min:    10 * time.Millisecond,
			Max:    20 * time.Millisecond,
		}

		if report != want {
			t.Fatalf("report %+v, want %+v", report, want)
		}
	}

	if stats.Delta != 20*time.Millisecond {
		t.Fatalf("delta %s, want 20ms", stats.Delta)
	}

	// the next window starts empty
	now = now.Add(time.Millisecond)
	if _, ok := stats.Record(now); ok {
		t.Fatal("report right after a full window")
	}
}

func TestFrameReportFPS(t *testing.T) {
	report := FrameReport{Mean: 20 * time.Millisecond}
	if fps := report.FPS(); fps < 49.999 || fps > 50.001 {
		t.Fatalf("fps %f, want 50", fps)
	}

	if fps := (FrameReport{}).FPS(); fps != 0 {
		t.Fatalf("fps of an empty report %f, want 0", fps)
	}
}

func TestFrameReportLogValue(t *testing.T) {
	value := FrameReport{Frames: 61, Mean: time.Millisecond}.LogValue()
	if value.Kind() != slog.KindGroup {
		t.Fatalf("kind %s, want group", value.Kind())
	}

	attrs := value.Group()
	if len(attrs) != 5 || attrs[0].Key != "frames" || attrs[0].Value.Uint64() != 61 {
		t.Fatalf("unexpected attributes %v", attrs)
	}
}
