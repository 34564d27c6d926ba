package game

import (
	"sync"
	"sync/atomic"
	"time"
)

// Frame budget thresholds at 60 Hz.
const (
	frameBudgetSoft = 16670 * time.Microsecond // one 60 Hz frame
	frameBudgetHard = 33 * time.Millisecond    // two frames, visibly degraded
)

// FrameStats tracks frame pipeline timing and throughput. Counters are
// atomic so the HUD can read them while a frame is in flight.
type FrameStats struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame

	overSoftBudget atomic.Uint64
	overHardBudget atomic.Uint64

	paintedItems atomic.Int64
	visibleTiles atomic.Int64
	drainedOps   atomic.Uint64

	mutex        sync.RWMutex
	avgFrameTime float64 // nanoseconds, running mean
	startTime    time.Time
}

func NewFrameStats() *FrameStats {
	return &FrameStats{startTime: time.Now()}
}

// FrameTimer measures one frame build.
type FrameTimer struct {
	stats     *FrameStats
	startTime time.Time
}

// StartFrame begins timing one frame build.
func (fs *FrameStats) StartFrame() *FrameTimer {
	return &FrameTimer{stats: fs, startTime: time.Now()}
}

// EndFrame records the elapsed build time and the budget counters.
func (ft *FrameTimer) EndFrame() {
	elapsed := time.Since(ft.startTime)
	fs := ft.stats

	fs.frameTime.Store(uint64(elapsed.Nanoseconds()))
	count := fs.frameCount.Add(1)
	if elapsed > frameBudgetSoft {
		fs.overSoftBudget.Add(1)
	}
	if elapsed > frameBudgetHard {
		fs.overHardBudget.Add(1)
	}

	fs.mutex.Lock()
	fs.avgFrameTime += (float64(elapsed.Nanoseconds()) - fs.avgFrameTime) / float64(count)
	fs.mutex.Unlock()
}

// RecordFrameLoad stores the item and tile counts of the frame just built.
func (fs *FrameStats) RecordFrameLoad(paintedItems, visibleTiles int) {
	fs.paintedItems.Store(int64(paintedItems))
	fs.visibleTiles.Store(int64(visibleTiles))
}

// RecordDrain accumulates applied sync mutations.
func (fs *FrameStats) RecordDrain(applied int) {
	if applied > 0 {
		fs.drainedOps.Add(uint64(applied))
	}
}

func (fs *FrameStats) FrameCount() uint64 { return fs.frameCount.Load() }

// LastFrameMs returns the last frame build time in milliseconds.
func (fs *FrameStats) LastFrameMs() float64 {
	return float64(fs.frameTime.Load()) / float64(time.Millisecond)
}

// AvgFrameMs returns the running mean build time in milliseconds.
func (fs *FrameStats) AvgFrameMs() float64 {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()
	return fs.avgFrameTime / float64(time.Millisecond)
}

// DegradedFrames returns how many frames exceeded the soft and hard
// budgets since start.
func (fs *FrameStats) DegradedFrames() (overSoft, overHard uint64) {
	return fs.overSoftBudget.Load(), fs.overHardBudget.Load()
}

func (fs *FrameStats) PaintedItems() int { return int(fs.paintedItems.Load()) }
func (fs *FrameStats) VisibleTiles() int { return int(fs.visibleTiles.Load()) }
func (fs *FrameStats) DrainedOps() uint64 { return fs.drainedOps.Load() }

// Uptime returns time since the stats were created.
func (fs *FrameStats) Uptime() time.Duration {
	return time.Since(fs.startTime)
}
