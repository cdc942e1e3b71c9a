package transform

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-loudness/internal/testutil"
)

func BenchmarkEngines(b *testing.B) {
	for name, factory := range backends() {
		for _, size := range []int{256, 2048} {
			e, err := factory(size)
			if err != nil {
				b.Fatalf("factory: %v", err)
			}
			x := testutil.DeterministicNoise(1, 1, size)

			b.Run(name+"/"+strconv.Itoa(size), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_ = e.Process(x)
				}
			})
		}
	}
}
