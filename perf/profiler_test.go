package perf

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"meteorstorm/world"
)

func waitIdle(t *testing.T, p *Profiler) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for p.Running() {
		if time.Now().After(deadline) {
			t.Fatalf("Expected the capture to finish")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSlowFrameOf(t *testing.T) {
	w, err := world.New(world.DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	w.Step(1.0/60, world.Input{})

	frame := SlowFrameOf(w, 30)
	if frame.Stars != w.Stars.ActiveCount() || frame.Asteroids != w.Asteroids.ActiveCount() || frame.Phase != world.PhasePlaying {
		t.Errorf("Expected a snapshot of the world, got %+v", frame)
	}
	if got := frame.String(); !strings.Contains(got, "30 FPS while playing") {
		t.Errorf("Expected FPS and phase in %q", got)
	}
}

func TestCaptureWritesProfileAndNote(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProfiler(dir)
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}
	p.Window = 10 * time.Millisecond

	frame := SlowFrame{FPS: 20, Phase: world.PhaseZooming, Asteroids: 7, Explosions: 25}
	if !p.Capture(frame) {
		t.Fatalf("Expected the first capture to start")
	}
	if p.Capture(frame) {
		t.Errorf("Expected a second capture within the cooldown to be skipped")
	}
	waitIdle(t, p)

	notes, _ := filepath.Glob(filepath.Join(dir, "slow-frame-*.cpu.prof.txt"))
	if len(notes) != 1 {
		t.Fatalf("Expected one profile note, got %v", notes)
	}
	note, err := os.ReadFile(notes[0])
	if err != nil {
		t.Fatalf("failed to read note: %v", err)
	}
	if !strings.Contains(string(note), "asteroids=7 explosions=25") {
		t.Errorf("Expected the frame load in the note, got %q", note)
	}
	if _, err := os.Stat(strings.TrimSuffix(notes[0], ".txt")); err != nil {
		t.Errorf("Expected the CPU profile next to the note: %v", err)
	}
}

func TestCaptureAfterCooldown(t *testing.T) {
	p, err := NewProfiler(t.TempDir())
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}
	p.Window = time.Millisecond
	p.Cooldown = 0

	if !p.Capture(SlowFrame{}) {
		t.Fatalf("Expected the first capture to start")
	}
	waitIdle(t, p)
	if !p.Capture(SlowFrame{}) {
		t.Errorf("Expected a capture once the previous one finished and no cooldown applies")
	}
	waitIdle(t, p)
}
