package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound lengths
const (
	laserDuration     = 150 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	gameOverNote      = 220 * time.Millisecond
	musicBeat         = 300 * time.Millisecond
)

// sweep is a square wave whose pitch slides linearly from one frequency to
// another over its duration.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// burst is decaying white noise mixed with a low rumble.
type burst struct {
	rate  beep.SampleRate
	rng   *rand.Rand
	pos   int
	total int
}

func newBurst(rate beep.SampleRate, d time.Duration, seed int64) *burst {
	return &burst{rate: rate, rng: rand.New(rand.NewSource(seed)), total: rate.N(d)}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		envelope := math.Exp(-t * 9)
		noise := b.rng.Float64()*2 - 1
		rumble := math.Sin(2 * math.Pi * 60 * t)

		val := envelope * (0.7*noise + 0.3*rumble)
		samples[i][0] = val
		samples[i][1] = val
		b.pos++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }

// fade scales a finite streamer linearly to silence at its end.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.pos)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// tone returns a sine note of the given length that fades out.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return &fade{streamer: beep.Take(rate.N(d), sine), total: rate.N(d)}
}

// music is an endless bass arpeggio.
type music struct {
	rate  beep.SampleRate
	notes []float64
	beat  int
	pos   int
	phase float64
}

func newMusic(rate beep.SampleRate) *music {
	return &music{
		rate:  rate,
		notes: []float64{55, 55, 65.41, 73.42, 55, 55, 82.41, 73.42},
		beat:  rate.N(musicBeat),
	}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := m.notes[(m.pos/m.beat)%len(m.notes)]
		inBeat := float64(m.pos%m.beat) / float64(m.beat)
		envelope := math.Exp(-inBeat * 4)

		val := 0.5 * envelope * math.Sin(2*math.Pi*m.phase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += note / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }

// volume wraps s in a gain stage. Gain is in powers of two.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain}
}

// LaserSound is played when the ship fires.
func LaserSound(rate beep.SampleRate) beep.Streamer {
	return volume(newSweep(rate, 1400, 300, laserDuration), -2)
}

// ExplosionSound is played when a rock or the ship is hit.
func ExplosionSound(rate beep.SampleRate) beep.Streamer {
	return newBurst(rate, explosionDuration, time.Now().UnixNano())
}

// GameOverSound is a falling three-note sting.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(rate, 392, gameOverNote),
		tone(rate, 311.13, gameOverNote),
		tone(rate, 196, gameOverNote*2),
	)
}

// MusicTrack is the looping background bed.
func MusicTrack(rate beep.SampleRate) beep.Streamer {
	return volume(newMusic(rate), -1)
}
