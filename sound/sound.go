// Package sound plays the synthesized effects for engine events.
package sound

import (
	"log"
	"sync"

	cfg "github.com/automoto/cosmicdash/config"
	"github.com/automoto/cosmicdash/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state, created once and shared across runs
var (
	globalAudioContext *audio.Context
	globalPlayer       *Player
	audioInitOnce      sync.Once
)

// Player caches rendered effects and plays them on demand
type Player struct {
	context *audio.Context
	cache   map[cfg.EventID][]byte
	muted   bool
}

// Default returns the shared player, creating the audio context on first use
func Default() *Player {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalPlayer = NewPlayer(globalAudioContext)
	})
	return globalPlayer
}

// NewPlayer creates a player on an existing audio context
func NewPlayer(ctx *audio.Context) *Player {
	return &Player{
		context: ctx,
		cache:   make(map[cfg.EventID][]byte),
	}
}

// Preload renders every effect up front so the first play has no delay
func (p *Player) Preload() {
	for id := cfg.EventStart; id <= cfg.EventNewHighScore; id++ {
		p.pcm(id)
	}
}

func (p *Player) pcm(id cfg.EventID) []byte {
	if data, ok := p.cache[id]; ok {
		return data
	}
	data := synth.Render(id)
	p.cache[id] = data
	return data
}

// Play starts the effect for each event
func (p *Player) Play(events []cfg.EventID) {
	if p == nil || p.muted {
		return
	}
	for _, id := range events {
		data := p.pcm(id)
		if len(data) == 0 {
			continue
		}
		player := p.context.NewPlayerFromBytes(data)
		player.Play()
	}
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	log.Printf("Sound muted: %v", p.muted)
	return p.muted
}

// Muted reports whether effects are silenced
func (p *Player) Muted() bool {
	return p.muted
}
