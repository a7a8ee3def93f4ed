package synth

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/cosmicdash/config"
	"github.com/gopxl/beep"
)

const bufferSize = 512

// EncodePCM drains a streamer into 16-bit little endian interleaved stereo,
// the format ebiten's audio players read
func EncodePCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}

	var out []byte
	buf := make([][2]float64, bufferSize)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Render returns the PCM bytes for an event at the configured sample rate
func Render(id cfg.EventID) []byte {
	return EncodePCM(Effect(id, beep.SampleRate(cfg.Audio.SampleRate)))
}
