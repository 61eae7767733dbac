package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	hexint "github.com/shabbyrobe/go-hexint"
)

// This is a cheap-and-nasty experiment to find a sensible value for
// hexint.KaratsubaThreshold on the current machine. It multiplies random
// operands of a fixed digit count using a range of thresholds and prints how
// long each one took.
//
// The numbers it produces are only as good as the machine it runs on, so
// don't read too much into a single run.

const usage = `Karatsuba threshold finder

Usage: <digits> <iterations> [<threshold>...]`

var defaultThresholds = []int{4, 8, 16, 24, 32, 40, 48, 64, 96, 128, 1 << 30}

type timing struct {
	Threshold int
	Total     time.Duration
	PerOp     time.Duration
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	digits, err := strconv.Atoi(os.Args[1])
	if err != nil {
		return err
	}
	if digits <= 0 {
		return fmt.Errorf("digits must be > 0, found %d", digits)
	}

	iterations, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return err
	}
	if iterations <= 0 {
		return fmt.Errorf("iterations must be > 0, found %d", iterations)
	}

	thresholds := defaultThresholds
	if len(os.Args) > 3 {
		thresholds = nil
		for _, arg := range os.Args[3:] {
			t, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			thresholds = append(thresholds, t)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	xs := make([]hexint.Int, iterations)
	ys := make([]hexint.Int, iterations)
	for i := range xs {
		xs[i] = hexint.RandInt(rng, digits)
		ys[i] = hexint.RandInt(rng, digits)
	}

	// Every threshold has to agree with schoolbook multiplication, otherwise
	// the timings are meaningless.
	expected := make([]hexint.Int, iterations)
	for i := range xs {
		expected[i] = xs[i].MulKaratsuba(ys[i], digits+1)
	}

	var timings []timing
	var best *timing
	for _, threshold := range thresholds {
		start := time.Now()
		for i := range xs {
			out := xs[i].MulKaratsuba(ys[i], threshold)
			if !out.Equal(expected[i]) {
				spew.Dump(xs[i].Digits(), ys[i].Digits())
				return fmt.Errorf("threshold %d: %s * %s = %s, expected %s", threshold, xs[i], ys[i], out, expected[i])
			}
		}
		total := time.Since(start)

		timings = append(timings, timing{
			Threshold: threshold,
			Total:     total,
			PerOp:     total / time.Duration(iterations),
		})
		fmt.Printf("threshold:%-10d total:%-14s per-op:%s\n", threshold, total, total/time.Duration(iterations))
	}

	for i := range timings {
		if best == nil || timings[i].Total < best.Total {
			best = &timings[i]
		}
	}

	spew.Dump(timings)
	fmt.Printf("digits:%d fastest:%d current:%d\n", digits, best.Threshold, hexint.KaratsubaThreshold)

	return nil
}
