package report

import (
	"math"
	"testing"
)

func TestSummarize_MeanAndStdDev(t *testing.T) {
	s := Summarize([]float64{100, 200})
	if s.Mean != 150 {
		t.Errorf("expected mean 150, got %f", s.Mean)
	}
	if s.StdDev != 50 {
		t.Errorf("expected population stddev 50, got %f", s.StdDev)
	}
}

func TestSummarize_SingleSample(t *testing.T) {
	s := Summarize([]float64{42})
	if s.Mean != 42 {
		t.Errorf("expected mean 42, got %f", s.Mean)
	}
	if s.StdDev != 0 {
		t.Errorf("expected stddev 0 for a single sample, got %f", s.StdDev)
	}
}

func TestSummarize_UniformSamples(t *testing.T) {
	s := Summarize([]float64{5, 5, 5, 5})
	if s.Mean != 5 {
		t.Errorf("expected mean 5, got %f", s.Mean)
	}
	if s.StdDev != 0 {
		t.Errorf("expected stddev 0 for uniform samples, got %f", s.StdDev)
	}
}

func TestSummarize_ThreeSamples(t *testing.T) {
	s := Summarize([]float64{10, 20, 30})
	if s.Mean != 20 {
		t.Errorf("expected mean 20, got %f", s.Mean)
	}
	want := math.Sqrt(200.0 / 3.0)
	if math.Abs(s.StdDev-want) > 1e-9 {
		t.Errorf("expected stddev %.12f, got %.12f", want, s.StdDev)
	}
}

func TestSummarize_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Summarize to panic on an empty sample set")
		}
	}()
	Summarize(nil)
}
