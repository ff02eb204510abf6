// Package aoc are quick & dirty utilities for solving the Advent of Code 2024
// puzzles: a runner that dispatches to D{day}p{part} methods, sample
// extraction from doc comments, and grid, container and math helpers.
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// Log is the runner's logger. It writes to stderr so that stdout only ever
// carries the puzzle answers.
var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		Log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded by the solver struct handed to Run. It gives the
// D{day}p{part} methods access to the day's input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Day reports the day currently being solved.
func (p *Puzzle) Day() int {
	return p.day.day
}

// InputPath is where the real input for the current day lives: input/NN.in
// under the directory given by -input.
func (p *Puzzle) InputPath() string {
	return filepath.Join(flagInputDir, fmt.Sprintf("%02d.in", p.Day()))
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		b, err := os.ReadFile(p.InputPath())
		if err != nil {
			Log.WithField("day", p.Day()).Fatalf("reading input: %v", err)
		}
		p.input = b
	}
	return p.input
}

// Workers is the fan-out allowed for puzzles that parallelize their work.
func (p *Puzzle) Workers() int {
	return max(flagWorkers, 1)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if !flagDebug {
		return
	}
	Log.WithFields(logrus.Fields{
		"day":    p.Day(),
		"part":   p.solver.Part,
		"sample": p.SampleMode,
	}).Debugf(format, args...)
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		Log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() any)
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagInputDir   string
	flagWorkers    int
	flagCPUProfile bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run; -1 runs every day")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run the samples and check their answers")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagInputDir, "input", "input", "directory holding the NN.in input files")
	flag.IntVar(&flagWorkers, "workers", runtime.GOMAXPROCS(0), "goroutines used by parallel solvers")
	flag.BoolVar(&flagCPUProfile, "cpuprofile", false, "write a CPU profile to the current directory")
}

var initFlags = sync.OnceFunc(flag.Parse)

// partName spells the part the way the answers are printed.
func partName(part string) string {
	switch part {
	case "1":
		return "one"
	case "2":
		return "two"
	}
	return part
}

func bindPuzzle(slvr any, p *Puzzle) {
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

// call runs one part, turning a panic (malformed input) into an error.
func (p *Puzzle) call(ps partSolver) (got any, took time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", ps.Name, r)
		}
	}()
	p.solver = ps
	t0 := time.Now()
	got = ps.fn()
	return got, time.Since(t0), nil
}

func runDay(slvr any, year int, d day, samples map[string]sample) {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	bindPuzzle(slvr, p)
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		got, took, err := p.call(ps)
		log := Log.WithFields(logrus.Fields{
			"day":  d.day,
			"part": ps.Part,
		})
		if err != nil {
			log.Fatalf("malformed input: %v", err)
		}
		log.Debugf("took %v", took.Round(time.Microsecond))
		fmt.Printf("Part %s: %v\n", partName(ps.Part), got)
	}
}

// SampleResult is the outcome of running one part against the sample
// embedded in its doc comment.
type SampleResult struct {
	Day  int
	Part string
	Name string
	Got  string
	Want string
	Err  error
}

func (r SampleResult) OK() bool {
	return r.Err == nil && r.Got == r.Want
}

// RunSamples runs every D{day}p{part} method of slvr against the sample found
// in its doc comment in src.
func RunSamples(year int, src []byte, slvr any) []SampleResult {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var out []SampleResult
	for _, dn := range dayNums {
		d := days[dn]
		p := &Puzzle{
			year:       year,
			day:        d,
			samples:    samples,
			SampleMode: true,
		}
		bindPuzzle(slvr, p)
		for _, ps := range d.parts {
			res := SampleResult{Day: dn, Part: ps.Part, Name: ps.Name}
			if s, ok := samples[ps.Name]; !ok {
				res.Err = fmt.Errorf("no sample found for %v", ps.Name)
			} else {
				res.Want = s.want
				var got any
				got, _, res.Err = p.call(ps)
				res.Got = fmt.Sprint(got)
			}
			out = append(out, res)
		}
	}
	return out
}

// Run parses the flags and solves the selected day (or every registered day)
// with the methods of slvr. src is the source of the file declaring those
// methods; it is only parsed for samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	if flagDebug {
		Log.SetLevel(logrus.DebugLevel)
	}
	if flagCPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if flagOnlySample {
		failed := false
		for _, r := range RunSamples(year, src, slvr) {
			if flagCurDay != -1 && r.Day != flagCurDay {
				continue
			}
			if flagPart != "" && r.Part != flagPart {
				continue
			}
			log := Log.WithFields(logrus.Fields{"day": r.Day, "part": r.Part})
			switch {
			case r.Err != nil:
				failed = true
				log.Errorf("sample: %v", r.Err)
			case !r.OK():
				failed = true
				log.Errorf("sample: got %v; want %v", r.Got, r.Want)
			default:
				log.Infof("sample: %v", r.Got)
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	samples := extractSamples(src)
	days := extractMethods(slvr)
	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			Log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		fmt.Printf("Day %d\n", d)
		runDay(slvr, year, days[d], samples)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel calls f on each element of in, running at most workers calls at
// once, and returns the results in input order.
func Parallel[I, O any](workers int, in []I, f func(I) O) []O {
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	out := make([]O, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("item %d: %v", i, r)
				}
			}()
			out[i] = f(v)
			return nil
		})
	}
	MustDo(g.Wait())
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](workers int, in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(workers, in, f),
		f2,
		defVal,
	)
}
