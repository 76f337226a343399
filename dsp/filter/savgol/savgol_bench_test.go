package savgol

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-tprofile/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	x := testutil.LapseProfile(1, 15, 0.01, 0.5, 8192)
	for _, window := range []int{11, 51, 101} {
		b.Run(fmt.Sprintf("window=%d", window), func(b *testing.B) {
			f, err := New(window, 3)
			if err != nil {
				b.Fatal(err)
			}
			for b.Loop() {
				_, _ = f.Apply(x)
			}
		})
	}
}
