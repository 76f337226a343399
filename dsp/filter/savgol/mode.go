package savgol

import (
	"fmt"

	"github.com/cwbudde/algo-tprofile/dsp/core"
)

// Mode selects how samples outside the input are synthesised.
type Mode int

const (
	// ModeNearest replicates the first and last samples (a a a | a b c | c c c).
	ModeNearest Mode = iota
	// ModeMirror reflects about the edge samples without repeating them
	// (c b | a b c | b a).
	ModeMirror
	// ModeConstant pads with a constant value, zero unless set with WithCval.
	ModeConstant
	// ModeWrap treats the input as periodic (b c | a b c | a b).
	ModeWrap
)

var modeNames = map[Mode]string{
	ModeNearest:  "nearest",
	ModeMirror:   "mirror",
	ModeConstant: "constant",
	ModeWrap:     "wrap",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode for name ("nearest", "mirror", "constant",
// "wrap").
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

// extend returns x with pad synthesised samples on each side.
func extend(x []float64, pad int, mode Mode, cval float64) []float64 {
	n := len(x)
	out := make([]float64, n+2*pad)
	copy(out[pad:], x)

	for j := 1; j <= pad; j++ {
		out[pad-j] = sampleAt(x, -j, mode, cval)
		out[pad+n-1+j] = sampleAt(x, n-1+j, mode, cval)
	}

	return out
}

func sampleAt(x []float64, i int, mode Mode, cval float64) float64 {
	n := len(x)
	if i >= 0 && i < n {
		return x[i]
	}

	switch mode {
	case ModeMirror:
		if n == 1 {
			return x[0]
		}
		period := 2 * (n - 1)
		i %= period
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = period - i
		}
		return x[i]
	case ModeWrap:
		return x[((i%n)+n)%n]
	case ModeConstant:
		return cval
	default:
		return x[core.ClampIndex(i, n)]
	}
}
