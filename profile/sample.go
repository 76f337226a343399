package profile

// Sample is one measurement of a trace.
type Sample struct {
	Altitude    float64
	Temperature float64
}

// Series is an ordered trace. Position in the slice is the sample index.
type Series []Sample

// Len returns the number of samples.
func (s Series) Len() int { return len(s) }

// Temperatures returns the temperature column.
func (s Series) Temperatures() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.Temperature
	}
	return out
}

// Altitudes returns the altitude column.
func (s Series) Altitudes() []float64 {
	out := make([]float64, len(s))
	for i, smp := range s {
		out[i] = smp.Altitude
	}
	return out
}

// NewSeries zips altitude and temperature columns. It returns
// ErrAlignment if they differ in length.
func NewSeries(altitudes, temperatures []float64) (Series, error) {
	if len(altitudes) != len(temperatures) {
		return nil, alignmentError("altitudes", len(altitudes), "temperatures", len(temperatures))
	}
	s := make(Series, len(altitudes))
	for i := range s {
		s[i] = Sample{Altitude: altitudes[i], Temperature: temperatures[i]}
	}
	return s, nil
}

// FittedPoint is the fitted polynomial evaluated at one grid position.
type FittedPoint struct {
	Position float64
	Value    float64
}

// FittedSeries is the fitted curve on the evaluation grid.
type FittedSeries []FittedPoint

// Values returns the fitted values.
func (f FittedSeries) Values() []float64 {
	out := make([]float64, len(f))
	for i, p := range f {
		out[i] = p.Value
	}
	return out
}

// SmoothedSeries holds one smoothed temperature per input sample.
type SmoothedSeries []float64

// OutputRow is the merged record for one sample index.
type OutputRow struct {
	Position float64
	Altitude float64
	Raw      float64
	Fitted   float64
	Smoothed float64
}
