package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"meteorstorm/world"
)

const (
	sampleRate = beep.SampleRate(44100)

	impactDuration   = 400 * time.Millisecond
	gameOverDuration = 1200 * time.Millisecond

	musicNoteDuration = 250 * time.Millisecond
	musicVolume       = 0.4
)

// musicNotes is the background arpeggio, A minor over two octaves
var musicNotes = []float64{110, 130.81, 164.81, 220, 164.81, 130.81, 110, 98}

// SoundManager plays the gameplay sound effects. Every method is safe to call
// before Initialize or after Cleanup; they are no-ops then.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given linear volume (0..1)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: max(0, min(1, volume)),
	}
}

// Initialize opens the speaker, starts the mixer and loops the background music
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		return err
	}

	sm.music = &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate, musicNotes, musicNoteDuration)}
	sm.mixer.Add(withVolume(sm.music, sm.volume*musicVolume))
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.initialized = false
}

// SetMusicPaused pauses or resumes the background music
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// HandleEvents plays the sound for each gameplay event
func (sm *SoundManager) HandleEvents(events []world.Event) {
	for _, e := range events {
		switch e.Kind {
		case world.EventPlayerHit:
			sm.PlayImpact()
		case world.EventPlayerDied:
			sm.PlayGameOver()
		}
	}
}

// PlayImpact plays a short noise burst for an asteroid strike
func (sm *SoundManager) PlayImpact() {
	sm.play(beep.Take(sampleRate.N(impactDuration), NewImpactGenerator(sampleRate, time.Now().UnixNano())))
}

// PlayGameOver plays a falling tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(gameOverDuration), NewSweepGenerator(sampleRate, 440, 110, gameOverDuration)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// withVolume scales a stream by a linear volume
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ImpactGenerator is decaying noise over a low rumble
type ImpactGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewImpactGenerator creates an impact generator with a deterministic noise seed
func NewImpactGenerator(sr beep.SampleRate, seed int64) *ImpactGenerator {
	return &ImpactGenerator{sr: sr, seed: seed & 0x7fffffff}
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error {
	return nil
}

// SweepGenerator glides a sine tone from one frequency to another and fades out
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(1, sr.N(d)),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// MusicGenerator plays a sequence of plucked sine notes forever. The output
// repeats exactly every len(notes) notes.
type MusicGenerator struct {
	notes       []float64
	sr          beep.SampleRate
	noteSamples int
	pos         int
}

// NewMusicGenerator creates a generator holding each note for d
func NewMusicGenerator(sr beep.SampleRate, notes []float64, d time.Duration) *MusicGenerator {
	return &MusicGenerator{
		notes:       notes,
		sr:          sr,
		noteSamples: max(1, sr.N(d)),
	}
}

// Period is the number of samples after which the output repeats
func (g *MusicGenerator) Period() int {
	return len(g.notes) * g.noteSamples
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		clear(samples)
		return len(samples), true
	}
	for i := range samples {
		note := g.pos / g.noteSamples
		t := float64(g.pos%g.noteSamples) / float64(g.sr)

		// Short attack, then exponential decay
		envelope := min(1, t*200) * math.Exp(-t*6)
		freq := g.notes[note]
		sample := 0.2 * envelope * (math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos = (g.pos + 1) % g.Period()
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
