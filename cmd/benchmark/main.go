package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/bits"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/limaJavier/sectionplanner/internal/logger"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const MB float32 = 1024 * 1024

// Scenario describes a synthetic selection: every course gets the same amount of sections and every section the same amount of sessions
type Scenario struct {
	Courses  int
	Sections int
	Sessions int
}

func (scenario Scenario) Name() string {
	return fmt.Sprintf("%vx%vx%v", scenario.Courses, scenario.Sections, scenario.Sessions)
}

// Size of the cartesian product before conflicts are filtered, or math.MaxUint64 if it cannot be represented
func (scenario Scenario) ProductSize() uint64 {
	size := uint64(1)
	for range scenario.Courses {
		hi, low := bits.Mul64(size, uint64(scenario.Sections))
		if hi != 0 {
			return math.MaxUint64
		}
		size = low
	}
	return size
}

type BenchmarkResult struct {
	Scenario     Scenario
	Seed         uint64
	Combinations int
	Duration     int64   // ms
	Memory       float32 // MB allocated while generating
}

var (
	outFile string
	seeds   int
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "benchmark",
	Short:         "Times combination generation over synthetic selections and writes the results as CSV",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]BenchmarkResult, 0)
		for _, scenario := range getScenarios() {
			for seed := range uint64(seeds) {
				log.Info().Str("scenario", scenario.Name()).Uint64("seed", seed).Msg("benchmarking")
				results = append(results, measure(scenario, seed))
			}
		}
		return toCsv(outFile, results)
	},
}

func main() {
	log = logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true})
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func init() {
	rootCmd.Flags().StringVar(&outFile, "out", "benchmark_results.csv", "CSV file where results are written")
	rootCmd.Flags().IntVar(&seeds, "seeds", 3, "Random selections generated per scenario")
}

func getScenarios() []Scenario {
	return []Scenario{
		{Courses: 3, Sections: 3, Sessions: 2},
		{Courses: 5, Sections: 4, Sessions: 2},
		{Courses: 6, Sections: 5, Sessions: 3},
		{Courses: 7, Sections: 6, Sessions: 2},
		{Courses: 8, Sections: 6, Sessions: 2},
	}
}

// Builds a random selection for the scenario: sessions take place on weekdays, start between 07:00 and 19:00 and last one or two hours
func randomSelection(scenario Scenario, random *rand.Rand) []model.CourseOption {
	options := make([]model.CourseOption, 0, scenario.Courses*scenario.Sections)
	sectionId := uint64(1)
	for course := range scenario.Courses {
		code := fmt.Sprintf("C%03d", course)
		for range scenario.Sections {
			sessions := lo.Times(scenario.Sessions, func(index int) model.Session {
				start := model.NewClock(uint16(7+random.IntN(13)), uint16(30*random.IntN(2)))
				return model.Session{
					Id:    sectionId*100 + uint64(index),
					Day:   model.Day(random.IntN(5)),
					Start: start,
					End:   start + model.Clock(60*(1+random.IntN(2))),
				}
			})
			options = append(options, model.MustCourseOption(
				model.Section{Id: sectionId, Number: fmt.Sprint(sectionId)},
				sessions,
				model.Course{Id: uint64(course + 1), Code: code, Credits: uint64(1 + random.IntN(4))},
			))
			sectionId++
		}
	}
	return options
}

func measure(scenario Scenario, seed uint64) BenchmarkResult {
	options := randomSelection(scenario, rand.New(rand.NewPCG(seed, uint64(scenario.Courses))))
	generator := model.NewCombinationGenerator(model.WithTokenIssuer(model.DeterministicTokens(model.TokenNamespace)))

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	combinations := generator.Generate(options)

	duration := time.Since(start)
	runtime.ReadMemStats(&after)

	if !model.Verify(combinations, options) {
		log.Fatal().Str("scenario", scenario.Name()).Uint64("seed", seed).Msg("verification failed")
	}

	return BenchmarkResult{
		Scenario:     scenario,
		Seed:         seed,
		Combinations: len(combinations),
		Duration:     duration.Milliseconds(),
		Memory:       float32(after.TotalAlloc-before.TotalAlloc) / MB,
	}
}

func toCsv(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Scenario", "Courses", "Sections", "Sessions", "Seed", "Product", "Combinations", "Duration(ms)", "Memory(MB)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Scenario.Name(),
			fmt.Sprintf("%d", result.Scenario.Courses),
			fmt.Sprintf("%d", result.Scenario.Sections),
			fmt.Sprintf("%d", result.Scenario.Sessions),
			fmt.Sprintf("%d", result.Seed),
			fmt.Sprintf("%d", result.Scenario.ProductSize()),
			fmt.Sprintf("%d", result.Combinations),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	return nil
}
