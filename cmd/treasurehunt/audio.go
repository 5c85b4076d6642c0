package main

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type tone struct {
	freq     float64
	duration float64
}

// tones stand in for recorded clips: every named sound is a short decaying
// sine wave.
var tones = map[string]tone{
	"jump":   {freq: 660, duration: 0.08},
	"attack": {freq: 880, duration: 0.06},
	"hit":    {freq: 220, duration: 0.12},
	"death":  {freq: 110, duration: 0.25},
	"coin":   {freq: 1320, duration: 0.09},
	"shoot":  {freq: 440, duration: 0.07},
}

type sounds struct {
	ctx   *audio.Context
	clips map[string][]byte
}

func newSounds() *sounds {
	return &sounds{ctx: audio.NewContext(sampleRate), clips: make(map[string][]byte)}
}

func (s *sounds) play(name string) {
	key := name
	if strings.HasPrefix(key, "attack") {
		key = "attack"
	}
	pcm, ok := s.clips[key]
	if !ok {
		t, known := tones[key]
		if !known {
			return
		}
		pcm = synthesize(t)
		s.clips[key] = pcm
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}

// synthesize renders t as 16-bit little-endian stereo PCM.
func synthesize(t tone) []byte {
	n := int(t.duration * sampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*t.freq*float64(i)/sampleRate) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
