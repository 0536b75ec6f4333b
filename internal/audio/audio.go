// Package audio plays a short chime when a run reaches its target or ends.
package audio

import (
	"sync"

	"github.com/faiface/beep"
	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/mrua/internal/logging"
	"github.com/san-kum/mrua/internal/motion"
)

const (
	SampleRate beep.SampleRate = 44100
	BufferSize                 = 1024
)

// Chime mixes notification tones into a portaudio output stream. The stream
// callback runs on portaudio's thread; everything it reads is behind mu.
type Chime struct {
	Stream *portaudio.Stream
	Volume float64

	mu     sync.Mutex
	mixer  beep.Mixer
	buf    [][2]float64
	Active bool
}

func NewChime(volume float64) *Chime {
	if volume <= 0 || volume > 1 {
		volume = 0.25
	}
	return &Chime{
		Volume: volume,
		buf:    make([][2]float64, BufferSize),
	}
}

// Start opens the default output device.
func (c *Chime) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, float64(SampleRate), BufferSize, c.Fill)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	logging.For("audio").Info("output stream started", "rate", int(SampleRate))
	c.Stream = stream
	c.Active = true
	return nil
}

func (c *Chime) Stop() {
	if c.Stream != nil {
		c.Stream.Stop()
		c.Stream.Close()
		c.Stream = nil
	}
	if c.Active {
		portaudio.Terminate()
	}
	c.Active = false
}

// Play queues the tone for kind. Tones overlap rather than cut each other off.
func (c *Chime) Play(kind motion.EventKind) {
	s := Phrase(kind)
	if s == nil {
		return
	}
	c.mu.Lock()
	c.mixer.Add(s)
	c.mu.Unlock()
}

func (c *Chime) OnEvent(e motion.Event) { c.Play(e.Kind) }
func (c *Chime) OnFrame(motion.State)   {}

// Playing reports how many tones are still sounding.
func (c *Chime) Playing() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mixer.Len()
}

// Fill is the portaudio callback: it renders the mixer into out. An empty
// mixer yields silence.
func (c *Chime) Fill(out [][]float32) {
	n := len(out[0])
	if cap(c.buf) < n {
		c.buf = make([][2]float64, n)
	}
	buf := c.buf[:n]

	c.mu.Lock()
	c.mixer.Stream(buf)
	c.mu.Unlock()

	for i := range buf {
		out[0][i] = float32(buf[i][0] * c.Volume)
		out[1][i] = float32(buf[i][1] * c.Volume)
	}
}
