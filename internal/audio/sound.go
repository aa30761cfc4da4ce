// Package audio plays short synthesized effects for simulation events.
// Everything is optional: when the speaker cannot be opened the player stays
// silent and every call is a no-op.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Arkantos123789/Bird-that-flaps/internal/games/flappy"
)

const (
	sampleRate = beep.SampleRate(44100)

	// resampleQuality is passed to beep.ResampleRatio for the score pitch shift.
	resampleQuality = 4
)

// Player mixes event effects into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewPlayer creates a silent player. seed drives the score pitch.
func NewPlayer(seed int64) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops queued effects and silences the player.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	// beep keeps the device open; a cleared mixer produces silence.
	p.initialized = false
}

// Handle plays the effect for a simulation event.
func (p *Player) Handle(e flappy.Event) {
	switch e.Kind {
	case flappy.EventBegan:
		p.PlayBegin()
	case flappy.EventScored:
		p.PlayScore()
	case flappy.EventCollided:
		p.PlayOuch()
	}
}

// PlayBegin plays the rising flap chirp.
func (p *Player) PlayBegin() {
	p.add(beep.Take(sampleRate.N(120*time.Millisecond), NewChirpGenerator(sampleRate, 300, 700)))
}

// PlayScore plays the score chime at a random pitch in (1, 2].
func (p *Player) PlayScore() {
	p.mu.Lock()
	pitch := p.nextPitch()
	p.mu.Unlock()

	chime := beep.Take(sampleRate.N(250*time.Millisecond), NewChimeGenerator(sampleRate, 660))
	p.add(beep.ResampleRatio(resampleQuality, pitch, chime))
}

// PlayOuch plays the collision thud.
func (p *Player) PlayOuch() {
	p.add(beep.Take(sampleRate.N(300*time.Millisecond), NewThudGenerator(sampleRate, p.seed())))
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// nextPitch returns a ratio in (1, 2]. Callers hold p.mu.
func (p *Player) nextPitch() float64 {
	return 2 - p.rng.Float64()
}

func (p *Player) seed() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Int63()
}
