package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()

	stop := Track("passes.GBuffer")
	time.Sleep(time.Millisecond)
	stop()

	ss := Snapshot()
	if ss["passes.GBuffer"] <= 0 {
		t.Errorf("Expected tracked duration to be recorded, got %v", ss["passes.GBuffer"])
	}
}

func TestSumWithPrefix(t *testing.T) {
	ResetFrame()

	Track("passes.GBuffer")()
	Track("passes.Lighting")()
	Track("glfw.SwapBuffers")()

	mu.Lock()
	frameTotals["passes.GBuffer"] = 2 * time.Millisecond
	frameTotals["passes.Lighting"] = 3 * time.Millisecond
	frameTotals["glfw.SwapBuffers"] = 5 * time.Millisecond
	mu.Unlock()

	if got := SumWithPrefix("passes."); got != 5*time.Millisecond {
		t.Errorf("Expected passes sum 5ms, got %v", got)
	}
	if got := SumWithPrefix("glfw."); got != 5*time.Millisecond {
		t.Errorf("Expected glfw sum 5ms, got %v", got)
	}
	if got := SumWithPrefix("nosuch."); got != 0 {
		t.Errorf("Expected zero sum for unmatched prefix, got %v", got)
	}
}

func TestResetFrameClears(t *testing.T) {
	Track("passes.GBuffer")()
	ResetFrame()

	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty totals after ResetFrame, got %v", Snapshot())
	}
}

func TestTopNFormatsLargestFirst(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["small"] = time.Millisecond
	frameTotals["large"] = 10 * time.Millisecond
	mu.Unlock()

	out := TopN(2)
	if !strings.HasPrefix(out, "large:") {
		t.Errorf("Expected largest entry first, got %q", out)
	}
}
