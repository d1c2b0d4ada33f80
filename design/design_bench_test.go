package design

import "testing"

func BenchmarkFirWin(b *testing.B) {
	sizes := []int{1024, 8192, 32768}
	for _, n := range sizes {
		b.Run("bandpass/"+itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = FirWin(n, []float64{0.1, 0.2}, WithPassZero(false))
			}
		})
	}
}

func BenchmarkKaiserBetaSlice(b *testing.B) {
	attens := make([]float64, 4096)
	for i := range attens {
		attens[i] = 8 + float64(i)*0.02
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = KaiserBetaSlice(attens)
	}
}

func BenchmarkCmplxSort(b *testing.B) {
	in := make([]complex128, 16384)
	for i := range in {
		in[i] = complex(float64(i%257), float64((i*31)%101))
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = CmplxSort(in)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
