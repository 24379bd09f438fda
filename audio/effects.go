package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/marquee/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave whose frequency glides linearly from start to end
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.startFreq
		if o.duration > 1 && o.endFreq != o.startFreq {
			freq += (o.endFreq - o.startFreq) * float64(o.position) / float64(o.duration-1)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or negative volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// TickFrequency maps an item index to its tick pitch
func TickFrequency(index int) float64 {
	step := index % constants.TickPitchCycle
	if step < 0 {
		step += constants.TickPitchCycle
	}
	return constants.TickBaseFrequency + float64(step)*constants.TickStepFrequency
}

// CreateTickSound generates a short pitched click for a settled seek
func CreateTickSound(index int, volume float64, rate beep.SampleRate) beep.Streamer {
	freq := TickFrequency(index)

	fund := NewEnvelope(
		NewOscillator(freq, constants.TickSoundDuration, WaveSine, rate),
		constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, rate)
	over := NewEnvelope(
		NewOscillator(freq*2, constants.TickSoundDuration, WaveSine, rate),
		constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease/2, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return beep.Take(rate.N(constants.TickSoundDuration), newVolume(mixed, volume))
}

// CreateBurstSound generates a whoosh that rises for forward bursts and falls for backward ones
func CreateBurstSound(direction, volume float64, rate beep.SampleRate) beep.Streamer {
	from, to := constants.BurstLowFrequency, constants.BurstHighFrequency
	if direction < 0 {
		from, to = to, from
	}

	sweep := NewEnvelope(
		NewSweep(from, to, constants.BurstSoundDuration, WaveSaw, rate),
		constants.BurstSoundDuration, constants.BurstSoundAttack, constants.BurstSoundRelease, rate)
	noise := NewEnvelope(
		NewOscillator(0, constants.BurstSoundDuration, WaveNoise, rate),
		constants.BurstSoundDuration, constants.BurstSoundAttack, constants.BurstSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sweep, 1-constants.BurstNoiseMix),
		newVolume(noise, constants.BurstNoiseMix),
	)
	return beep.Take(rate.N(constants.BurstSoundDuration), newVolume(mixed, volume*0.5))
}
