package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/deniable-galois/field"
)

var log = logging.Logger("benchmark")

// BenchmarkResult stores timing data for field operations
type BenchmarkResult struct {
	Field        string        `json:"field"`
	Width        int           `json:"width"`         // Bits per stored element
	InverseSteps int           `json:"inverse_steps"` // 0 when uncapped
	Unknowns     int           `json:"unknowns"`
	Iterations   int           `json:"iterations"`
	Mul          time.Duration `json:"mul_ns"`   // Average time for Mul
	Inv          time.Duration `json:"inv_ns"`   // Average time for Inv
	Solve        time.Duration `json:"solve_ns"` // Average time for SolveLinear
	ZeroPivots   int           `json:"zero_pivot_systems"`
	WrongRoots   int           `json:"wrong_root_systems"`
}

func main() {
	// Parse command-line flags
	fieldName := flag.String("field", "gf256", "Field to benchmark (gf16, gf256, gf65536, gf2_32)")
	unknowns := flag.Int("size", 8, "Number of unknowns in each linear system")
	iterations := flag.Int("iterations", 100, "Number of iterations per benchmark")
	exactInverse := flag.Bool("exact-inverse", false, "Run the extended Euclidean inverse to completion")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for random elements")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	outputFile := flag.String("output", "galois_benchmark.json", "Output file for benchmark results")
	flag.Parse()

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, using info\n", *logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	if *unknowns <= 0 || *iterations <= 0 {
		fmt.Fprintf(os.Stderr, "Error: size and iterations must be positive\n")
		os.Exit(1)
	}

	var opts []field.Option
	if *exactInverse {
		opts = append(opts, field.WithExactInverse())
	}
	rng := rand.New(rand.NewSource(*seed))

	var result BenchmarkResult
	switch *fieldName {
	case "gf16":
		g, err := field.NewGF16(opts...)
		exitOnError("create field", err)
		result = run(g, rng, *unknowns, *iterations)
	case "gf256":
		g, err := field.NewGF256(opts...)
		exitOnError("create field", err)
		result = run(g, rng, *unknowns, *iterations)
	case "gf65536":
		g, err := field.NewGF65536(opts...)
		exitOnError("create field", err)
		result = run(g, rng, *unknowns, *iterations)
	case "gf2_32":
		g, err := field.NewGF2_32(opts...)
		exitOnError("create field", err)
		result = run(g, rng, *unknowns, *iterations)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown field %q\n", *fieldName)
		os.Exit(1)
	}
	result.Field = *fieldName

	fmt.Printf("Benchmarking %s with:\n", result.Field)
	fmt.Printf("  Element width: %d bits\n", result.Width)
	fmt.Printf("  Inverse steps: %d\n", result.InverseSteps)
	fmt.Printf("  Unknowns: %d\n", result.Unknowns)
	fmt.Printf("  Iterations: %d\n", result.Iterations)
	fmt.Println()
	fmt.Printf("Mul:         %v\n", result.Mul)
	fmt.Printf("Inv:         %v\n", result.Inv)
	fmt.Printf("SolveLinear: %v\n", result.Solve)
	fmt.Printf("Systems with a zero pivot: %d/%d\n", result.ZeroPivots, result.Iterations)
	fmt.Printf("Systems with wrong roots:  %d/%d\n", result.WrongRoots, result.Iterations)

	// Write result to file
	data, err := json.MarshalIndent(result, "", "  ")
	exitOnError("marshal results", err)
	err = os.WriteFile(*outputFile, data, 0644)
	exitOnError("write results to file", err)

	fmt.Printf("\nBenchmark results written to: %s\n", *outputFile)
}

func run[T field.Unsigned](g *field.Galois[T], rng *rand.Rand, n, iterations int) BenchmarkResult {
	result := BenchmarkResult{
		Width:        field.Width[T](),
		InverseSteps: g.InverseSteps(),
		Unknowns:     n,
		Iterations:   iterations,
	}

	elements := make([]T, iterations)
	for i := range elements {
		elements[i] = randomNonZero(g, rng)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_ = g.Mul(elements[i], elements[(i+1)%iterations])
	}
	result.Mul = time.Since(start) / time.Duration(iterations)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		_ = g.Inv(elements[i])
	}
	result.Inv = time.Since(start) / time.Duration(iterations)

	// Build systems with known roots
	systems := make([]*field.Matrix[T], iterations)
	roots := make([][]T, iterations)
	for i := range systems {
		a := make([]T, n*n)
		for j := range a {
			a[j] = randomNonZero(g, rng)
		}
		A, err := field.NewMatrix(a, n, n)
		exitOnError("build matrix", err)

		roots[i] = make([]T, n)
		for j := range roots[i] {
			roots[i][j] = randomNonZero(g, rng)
		}
		b, err := g.MulVec(A, roots[i])
		exitOnError("compute constants", err)
		systems[i], err = field.Augment(A, b)
		exitOnError("augment matrix", err)

		if err := g.CheckPivots(systems[i]); err != nil {
			log.Debugw("system has a zero pivot", "system", i, "err", err)
			result.ZeroPivots++
		}
	}

	start = time.Now()
	for i := 0; i < iterations; i++ {
		g.SolveLinear(systems[i])
	}
	result.Solve = time.Since(start) / time.Duration(iterations)

	for i, m := range systems {
		sol := m.Solution()
		for j := range sol {
			if sol[j] != roots[i][j] {
				result.WrongRoots++
				break
			}
		}
	}
	return result
}

func randomNonZero[T field.Unsigned](g *field.Galois[T], rng *rand.Rand) T {
	order := uint64(g.Order())
	return T(rng.Int63n(int64(order-1))) + 1
}

func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to %s: %v\n", what, err)
		os.Exit(1)
	}
}
