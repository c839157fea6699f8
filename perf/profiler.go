// Package perf captures CPU profiles when the game loop falls behind.
package perf

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"meteorstorm/world"
)

// SlowFrame is the simulation load at the moment the frame rate dropped
type SlowFrame struct {
	FPS        float64
	Phase      world.Phase
	Stars      int
	Asteroids  int
	Explosions int
}

// SlowFrameOf snapshots the load of w
func SlowFrameOf(w *world.World, fps float64) SlowFrame {
	return SlowFrame{
		FPS:        fps,
		Phase:      w.Phase(),
		Stars:      w.Stars.ActiveCount(),
		Asteroids:  w.Asteroids.ActiveCount(),
		Explosions: w.Explosions.ActiveCount(),
	}
}

func (f SlowFrame) String() string {
	return fmt.Sprintf("%.0f FPS while %s: stars=%d asteroids=%d explosions=%d",
		f.FPS, f.Phase, f.Stars, f.Asteroids, f.Explosions)
}

// Profiler samples the CPU for a short window after a slow frame and writes
// the profile next to a note describing the frame
type Profiler struct {
	// Window is how long the CPU is sampled after a slow frame
	Window time.Duration

	// Cooldown is the minimum time between captures
	Cooldown time.Duration

	dir string

	// last is only touched from the game loop
	last    time.Time
	running atomic.Bool
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}
	return &Profiler{
		Window:   3 * time.Second,
		Cooldown: 30 * time.Second,
		dir:      dir,
	}, nil
}

// Capture starts a background CPU profile for frame. Returns false when a
// capture is already running or the last one was within the cooldown.
func (p *Profiler) Capture(frame SlowFrame) bool {
	if time.Since(p.last) < p.Cooldown || !p.running.CompareAndSwap(false, true) {
		return false
	}
	p.last = time.Now()

	base := filepath.Join(p.dir, fmt.Sprintf("slow-frame-%s", p.last.Format("20060102-150405")))
	go func() {
		defer p.running.Store(false)
		if err := p.profile(base+".cpu.prof", frame); err != nil {
			log.Printf("Slow-frame profile failed: %v", err)
		}
	}()
	return true
}

func (p *Profiler) profile(path string, frame SlowFrame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.Window)
	pprof.StopCPUProfile()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	note := fmt.Sprintf("%s\nHeapAlloc=%d KB NumGC=%d PauseTotal=%v\n",
		frame, m.HeapAlloc/1024, m.NumGC, time.Duration(m.PauseTotalNs))
	if err := os.WriteFile(path+".txt", []byte(note), 0o644); err != nil {
		return fmt.Errorf("failed to write profile note: %w", err)
	}

	log.Printf("Slow-frame profile saved to %s (go tool pprof -http=:8080 %s)", path, path)
	return nil
}

// Running reports whether a capture is in progress
func (p *Profiler) Running() bool {
	return p.running.Load()
}
