package sound

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Bank holds named, pre-rendered cues on a shared audio context.
type Bank struct {
	ctx     *eaudio.Context
	players map[string]*eaudio.Player
}

// NewBank creates a Bank on the given context. Pass nil to create a fresh
// context at SampleRate; Ebitengine allows only one audio context per
// process, so share the game's context when it already has one.
func NewBank(ctx *eaudio.Context) *Bank {
	if ctx == nil {
		ctx = eaudio.NewContext(SampleRate)
	}
	return &Bank{
		ctx:     ctx,
		players: make(map[string]*eaudio.Player),
	}
}

// Context returns the bank's audio context.
func (b *Bank) Context() *eaudio.Context {
	return b.ctx
}

// Add renders the tone and registers it under name, replacing any existing
// cue with that name.
func (b *Bank) Add(name string, t Tone) {
	b.players[name] = b.ctx.NewPlayerFromBytes(Render(t))
}

// AddSequence renders the tones back to back and registers the result
// under name.
func (b *Bank) AddSequence(name string, tones []Tone) {
	b.players[name] = b.ctx.NewPlayerFromBytes(RenderSequence(tones))
}

// Play restarts the named cue from the beginning. Unknown names are
// ignored; a missing sound should never break a game.
func (b *Bank) Play(name string) {
	p, ok := b.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// Has reports whether a cue is registered under name.
func (b *Bank) Has(name string) bool {
	_, ok := b.players[name]
	return ok
}
