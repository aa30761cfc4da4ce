package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine linearly from one frequency to another over
// a fixed 120ms window, with a short fade out.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

// NewChirpGenerator creates a chirp from `from` Hz to `to` Hz.
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	length := float64(g.sr) * 0.12
	for i := range samples {
		progress := math.Min(float64(g.pos)/length, 1)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the sweep has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.2 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a bell-like tone with an exponential decay.
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at freq Hz.
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*2.76*t) // inharmonic partial
		sample *= math.Exp(-t * 10)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ThudGenerator generates a low impact thud over filtered noise.
type ThudGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	last float64
}

// NewThudGenerator creates a thud generator with a noise seed.
func NewThudGenerator(sr beep.SampleRate, seed int64) *ThudGenerator {
	return &ThudGenerator{sr: sr, seed: seed & 0x7fffffff}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.last += 0.1 * (noise - g.last) // one-pole low-pass

		// Pitch drops as the thud decays
		body := math.Sin(2 * math.Pi * (90 - 40*t) * t)

		sample := envelope * (0.35*body + 0.3*g.last)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
