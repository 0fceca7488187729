// Package bench drives a generator from several goroutines and reports
// latency, throughput and duplicated IDs.
package bench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/d3ce1t/flakeid/collision"
	"github.com/d3ce1t/flakeid/utils"
	"go.uber.org/zap"
)

var (
	ErrNoWorkers = errors.New("number of workers must be at least 1")
	ErrNoWork    = errors.New("number of calls must be at least 1")
)

// Generator is what gets benchmarked.
type Generator interface {
	NextID() uint64
}

type Options struct {
	NumTimes   int
	NumWorkers int
	// Every generated ID is recorded here. Defaults to a MemorySink.
	Sink   collision.Sink
	Logger *zap.Logger
}

type ExecutionStats struct {
	Min           time.Duration `yaml:"min"`
	Max           time.Duration `yaml:"max"`
	Avg           time.Duration `yaml:"avg"`
	CDur          time.Duration `yaml:"cumulative"`
	Ops           int           `yaml:"ops_per_second"`
	NumSamples    int           `yaml:"samples"`
	NumDuplicates int           `yaml:"duplicates"`
	NumErrors     int           `yaml:"errors"`
	NumTimes      int           `yaml:"total"`
}

func (s ExecutionStats) String() string {
	return fmt.Sprintf("min: %10v | max: %13v | avg: %10v | avg.ops: %9v | samples: %8v | dups: %4v | errors: %4v | total: %8v",
		s.Min, s.Max, s.Avg, s.Ops, s.NumSamples, s.NumDuplicates, s.NumErrors, s.NumTimes)
}

type Report struct {
	Workers  []ExecutionStats `yaml:"workers"`
	Global   ExecutionStats   `yaml:"global"`
	Duration time.Duration    `yaml:"duration"`

	// Call latencies in microseconds, one per sample
	latencies []float64
}

// Run calls gen.NextID opts.NumTimes times spread over opts.NumWorkers
// goroutines.
func Run(gen Generator, opts Options) (*Report, error) {

	if opts.NumWorkers < 1 {
		return nil, ErrNoWorkers
	}

	if opts.NumTimes < 1 {
		return nil, ErrNoWork
	}

	if opts.Sink == nil {
		opts.Sink = collision.NewMemorySink()
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var wg sync.WaitGroup

	statsSlice := make([]ExecutionStats, opts.NumWorkers)
	latencies := make([][]float64, opts.NumWorkers)

	// Distribute work between workers

	startTime := time.Now()

	for workerID, workSize := range utils.SplitWork(opts.NumTimes, opts.NumWorkers) {

		wg.Add(1)

		go func(workerID int, workSize int) {
			defer wg.Done()
			w := &worker{
				id:        workerID,
				gen:       gen,
				sink:      opts.Sink,
				logger:    opts.Logger,
				latencies: make([]float64, 0, workSize),
			}
			statsSlice[workerID] = w.execute(workSize)
			latencies[workerID] = w.latencies
		}(workerID, workSize)
	}

	wg.Wait()

	duration := time.Since(startTime)

	report := &Report{
		Workers:  statsSlice,
		Global:   computeGlobalStats(statsSlice, duration),
		Duration: duration,
	}

	for _, l := range latencies {
		report.latencies = append(report.latencies, l...)
	}

	return report, nil
}

type worker struct {
	id        int
	gen       Generator
	sink      collision.Sink
	logger    *zap.Logger
	latencies []float64
}

func (w *worker) execute(numTimes int) ExecutionStats {

	var min int64 = math.MaxInt64
	var max int64
	var sumDur time.Duration

	numSamples := 0
	numDuplicates := 0
	numErrors := 0

	for i := 0; i < numTimes; i++ {

		startTime := time.Now()
		id := w.gen.NextID()
		duration := time.Since(startTime)

		isNew, err := w.sink.Record(id)
		if err != nil {
			w.logger.Warn("record id failed", zap.Int("worker", w.id), zap.Uint64("id", id), zap.Error(err))
			numErrors++
			continue
		}

		if !isNew {
			w.logger.Error("duplicated id", zap.Int("worker", w.id), zap.Uint64("id", id))
			numDuplicates++
		}

		sumDur += duration
		durInt64 := int64(duration)
		min = utils.MinInt64(min, durInt64)
		max = utils.MaxInt64(max, durInt64)
		numSamples++
		w.latencies = append(w.latencies, float64(duration)/float64(time.Microsecond))
	}

	return newExecutionStats(min, max, sumDur, sumDur, numSamples, numDuplicates, numErrors, numTimes)
}

func computeGlobalStats(statsSlice []ExecutionStats, globalDuration time.Duration) ExecutionStats {

	var min int64 = math.MaxInt64
	var max int64
	var cdur time.Duration
	var numSamples int
	var numDuplicates int
	var numErrors int
	var numTimes int

	for _, stats := range statsSlice {
		if stats.NumSamples > 0 {
			min = utils.MinInt64(min, int64(stats.Min))
			max = utils.MaxInt64(max, int64(stats.Max))
		}
		cdur += stats.CDur
		numSamples += stats.NumSamples
		numDuplicates += stats.NumDuplicates
		numErrors += stats.NumErrors
		numTimes += stats.NumTimes
	}

	return newExecutionStats(min, max, cdur, globalDuration, numSamples, numDuplicates, numErrors, numTimes)
}

// Throughput is samples over wall time, which for a single worker is the
// time spent inside NextID.
func newExecutionStats(min, max int64, cdur, wall time.Duration, numSamples, numDuplicates, numErrors, numTimes int) ExecutionStats {

	stats := ExecutionStats{
		CDur:          cdur,
		NumSamples:    numSamples,
		NumDuplicates: numDuplicates,
		NumErrors:     numErrors,
		NumTimes:      numTimes,
	}

	if numSamples == 0 {
		return stats
	}

	stats.Min = time.Duration(min)
	stats.Max = time.Duration(max)
	stats.Avg = time.Duration(float64(cdur) / float64(numSamples))

	if wall > 0 {
		stats.Ops = int(float64(numSamples) / wall.Seconds())
	}

	return stats
}

// PrintHistogram writes a latency histogram (microseconds) with the given
// number of bins.
func (r *Report) PrintHistogram(w io.Writer, bins int) error {
	if len(r.latencies) == 0 || bins < 1 {
		return nil
	}

	min, max := r.latencies[0], r.latencies[0]
	for _, l := range r.latencies {
		min = math.Min(min, l)
		max = math.Max(max, l)
	}

	if min == max {
		_, err := fmt.Fprintf(w, "%v samples of %.3fus\n", len(r.latencies), min)
		return err
	}

	hist := histogram.Hist(bins, r.latencies)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
