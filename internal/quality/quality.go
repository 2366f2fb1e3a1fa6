// Package quality measures how uniform an MT19937 stream looks.
//
// A report combines the sample moments, a bucketed chi-square goodness of fit
// test against the uniform distribution, and the two-sample
// Kolmogorov-Smirnov distance to an independent stream drawn through
// gonum's distuv.Uniform.
package quality

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/parallel"
)

// Expected moments of the continuous uniform distribution on [0, 1].
const (
	UniformMean     = 0.5
	UniformVariance = 1.0 / 12
)

// minExpectedPerBin is the usual lower bound for the chi-square
// approximation to hold.
const minExpectedPerBin = 5

// companionSalt derives the seed of the comparison stream used for the
// Kolmogorov-Smirnov distance.
const companionSalt = 0x9e3779b9

var (
	// ErrNoSamples is returned when fewer than one sample is requested.
	ErrNoSamples = errors.New("quality: at least one sample is required")
	// ErrTooFewBins is returned when fewer than two bins are requested.
	ErrTooFewBins = errors.New("quality: at least two bins are required")
	// ErrTooFewSamples is returned when the expected count per bin is below 5.
	ErrTooFewSamples = errors.New("quality: too few samples per bin for a chi-square test")
)

// Report summarizes one stream.
type Report struct {
	Seed    uint32
	Samples int
	Bins    int

	Min, Max       float64
	Mean, Variance float64

	// ChiSquare is the bucketed goodness of fit statistic and ChiSquareP the
	// probability of a statistic at least as large for a uniform source.
	ChiSquare  float64
	ChiSquareP float64

	// KS is the largest distance between the empirical CDF of the stream
	// and that of the companion stream.
	KS float64
}

// Pass reports whether the stream stayed inside [0, 1] and the chi-square
// test did not reject uniformity at significance alpha.
func (r Report) Pass(alpha float64) bool {
	return r.Min >= 0 && r.Max <= 1 && r.ChiSquareP >= alpha
}

func (r Report) String() string {
	return fmt.Sprintf("seed=%d n=%d mean=%.6f var=%.6f min=%.3g max=%.9f chi2=%.3f p=%.4f ks=%.5f",
		r.Seed, r.Samples, r.Mean, r.Variance, r.Min, r.Max, r.ChiSquare, r.ChiSquareP, r.KS)
}

// Analyze draws samples values with Float64 from a generator seeded with
// seed and reports on them using bins equal-width buckets.
func Analyze(seed uint32, samples, bins int) (Report, error) {
	if samples < 1 {
		return Report{}, ErrNoSamples
	}
	if bins < 2 {
		return Report{}, ErrTooFewBins
	}
	expected := float64(samples) / float64(bins)
	if expected < minExpectedPerBin {
		return Report{}, fmt.Errorf("%w: %d samples over %d bins", ErrTooFewSamples, samples, bins)
	}

	g := mt19937.New(seed)
	x := make([]float64, samples)
	for i := range x {
		x[i] = g.Float64()
	}

	r := Report{
		Seed:    seed,
		Samples: samples,
		Bins:    bins,
		Min:     math.Inf(1),
		Max:     math.Inf(-1),
	}

	obs := make([]float64, bins)
	for _, v := range x {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
		// v == 1 is possible for the closed interval; it belongs to the last bin.
		b := min(int(v*float64(bins)), bins-1)
		obs[b]++
	}
	exp := make([]float64, bins)
	for i := range exp {
		exp[i] = expected
	}

	r.Mean, r.Variance = stat.MeanVariance(x, nil)
	r.ChiSquare = stat.ChiSquare(obs, exp)
	r.ChiSquareP = distuv.ChiSquared{K: float64(bins - 1)}.Survival(r.ChiSquare)

	u := distuv.Uniform{Min: 0, Max: 1, Src: mt19937.New(seed ^ companionSalt)}
	y := make([]float64, samples)
	for i := range y {
		y[i] = u.Rand()
	}
	slices.Sort(x)
	slices.Sort(y)
	r.KS = stat.KolmogorovSmirnov(x, nil, y, nil)

	return r, nil
}

// AnalyzeSeeds runs Analyze for every seed on its own generator, using up
// to workers goroutines (0 means one per CPU). Reports are returned in seed
// order; the first error aborts the result.
func AnalyzeSeeds(seeds []uint32, samples, bins, workers int) ([]Report, error) {
	type result struct {
		r   Report
		err error
	}
	n := parallel.Workers(workers, len(seeds))
	results := parallel.Map(0, len(seeds), n, func(i int) result {
		r, err := Analyze(seeds[i], samples, bins)
		return result{r, err}
	})

	reports := make([]Report, 0, len(seeds))
	for i, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("seed %d: %w", seeds[i], res.err)
		}
		reports = append(reports, res.r)
	}
	return reports, nil
}
