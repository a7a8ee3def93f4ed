package synth

import (
	"time"

	cfg "github.com/automoto/cosmicdash/config"
	"github.com/gopxl/beep"
)

// Effect returns a fresh streamer for the sound of a gameplay event, or nil
// when the event is silent
func Effect(id cfg.EventID, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch id {
	case cfg.EventStart:
		s = arpeggio(rate, 60*time.Millisecond, WaveSquare, 392, 523.25, 659.25)
	case cfg.EventJump:
		s = blip(rate, 90*time.Millisecond, WaveSquare, 440, 880)
	case cfg.EventFlip:
		s = blip(rate, 120*time.Millisecond, WaveSine, 900, 300)
	case cfg.EventScore:
		s = blip(rate, 70*time.Millisecond, WaveSine, 1318.5, 1318.5)
	case cfg.EventModeSwitch:
		s = arpeggio(rate, 50*time.Millisecond, WaveSaw, 523.25, 659.25, 783.99, 1046.5)
	case cfg.EventDeath:
		s = crash(rate)
	case cfg.EventNewHighScore:
		s = arpeggio(rate, 110*time.Millisecond, WaveSine, 1046.5, 1318.5, 1568)
	default:
		return nil
	}

	vol := cfg.Audio.Volume
	if m, ok := cfg.Audio.VolumeMultipliers[id]; ok {
		vol *= m
	}
	return newVolume(s, vol)
}

// blip is a single short enveloped tone
func blip(rate beep.SampleRate, d time.Duration, wave WaveType, from, to float64) beep.Streamer {
	osc := NewSweep(from, to, d, wave, rate)
	return NewEnvelope(osc, d, d/10, d/2, rate)
}

// arpeggio plays notes one after another
func arpeggio(rate beep.SampleRate, step time.Duration, wave WaveType, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, blip(rate, step, wave, n, n))
	}
	return beep.Seq(parts...)
}

// crash is a noise burst over a falling saw
func crash(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 400*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(180, 40, d, WaveSaw, rate), d, 5*time.Millisecond, 300*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5))
}
