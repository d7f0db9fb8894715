// Command exrandom-chisq runs a parallel chi-squared goodness-of-fit check
// against the normal sampler, fanning independent generator/sampler pairs
// out across workers and merging their histograms.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cartazio/exrandom-mirror"
	"github.com/cartazio/exrandom-mirror/mt19937"
)

const numBins = 50

func main() {
	total := flag.Int("n", 5_000_000, "total number of deviates to draw")
	seed := flag.Uint64("seed", uint64(mt19937.DefaultSeed), "base mt19937 seed; workers use seed+workerIndex")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	perWorker := *total / workers
	log.Info().Int("workers", workers).Int("per_worker", perWorker).Msg("starting chi-squared run")

	histograms := make([][numBins]int64, workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			return worker(uint32(*seed)+uint32(w), perWorker, &histograms[w])
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("worker failed")
	}

	var merged [numBins]int64
	var n int64
	for _, h := range histograms {
		for i, c := range h {
			merged[i] += c
			n += c
		}
	}

	// Equi-probable normal bin edges give each bin expected count n/numBins.
	expected := float64(n) / numBins
	var chisq float64
	for _, c := range merged {
		d := float64(c) - expected
		chisq += d * d / expected
	}
	log.Info().Int64("n", n).Float64("chi_squared", chisq).Int("bins", numBins).
		Msg("chi-squared statistic (49 degrees of freedom)")
	fmt.Printf("n=%d chi2=%.3f bins=%d\n", n, chisq, numBins)
}

// binEdges are the numBins-1 quantiles of the standard normal distribution
// that divide it into numBins equi-probable bins, computed once per worker
// via Acklam's rational approximation to the inverse normal CDF;
// this is the only place in the module a floating-point approximation to a
// transcendental is used, since it only ever sorts already-sampled
// deviates into bins for a diagnostic report and never participates in
// generating one.
func binEdges() [numBins - 1]float64 {
	var edges [numBins - 1]float64
	for i := range edges {
		p := float64(i+1) / numBins
		edges[i] = invNormalCDF(p)
	}
	return edges
}

func invNormalCDF(p float64) float64 {
	// Acklam's rational approximation, adequate for binning purposes.
	a := [...]float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02, 1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	b := [...]float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02, 6.680131188771972e+01, -1.328068155288572e+01}
	c := [...]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00, -2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	d := [...]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00, 3.754408661907416e+00}
	const pLow = 0.02425
	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	case p > 1-pLow:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}

func worker(seed uint32, count int, hist *[numBins]int64) error {
	ds, err := exrandom.NewRandDigitSource(1 << 32)
	if err != nil {
		return err
	}
	s, err := exrandom.NewNormalSampler(ds)
	if err != nil {
		return err
	}
	g := mt19937.NewSeeded(seed)
	edges := binEdges()
	for i := 0; i < count; i++ {
		v, err := exrandom.NormalValue[float64](s, g)
		if err != nil {
			return err
		}
		bin := 0
		for bin < len(edges) && v >= edges[bin] {
			bin++
		}
		hist[bin]++
	}
	return nil
}
