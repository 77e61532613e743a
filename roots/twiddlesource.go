package roots

// TwiddleSource generates twiddle factors exp(sign*i*j*2*pi/n) for
// j = 0, 1, 2, ..., choosing between the direct SineCache lookup and the
// incremental recurrence depending on how half==n/2 compares to
// cacheThreshold (CacheSize for FFT, CacheSize<<LogAngleStep for FHT's
// stride-sampling threshold).
type TwiddleSource struct {
	n              int
	sign           float64
	cached         bool
	series         *TwiddleSeries
	cacheThreshold int
}

// NewTwiddleSource builds a source for a stage combining n samples (n even),
// i.e. twiddles exp(sign*i*j*2*pi/n).
func NewTwiddleSource(n int, sign float64, cacheThreshold int) *TwiddleSource {
	half := n / 2
	return &TwiddleSource{n: n, sign: sign, cached: half <= cacheThreshold, cacheThreshold: cacheThreshold}
}

// Reset must be called once before each independent sweep of j values
// (e.g. once per outer butterfly group), since the recurrence path keeps
// running state in series.
func (t *TwiddleSource) Reset() {
	if !t.cached {
		t.series = NewTwiddleSeries(t.n, t.sign)
	}
}

// Next returns (cos, sin) for the given j and, on the recurrence path,
// advances to j+1 (j must be supplied in increasing order starting at 0
// after Reset, matching how both fft and fht sweep their inner loops).
func (t *TwiddleSource) Next(j int) (cosT, sinT float64) {
	if t.cached {
		return Twiddle(j, t.n, t.sign)
	}
	return t.series.Next()
}
