package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"transaction-seeder/internal/config"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/services"
)

// errUsage marks a flag error whose message the flag set already printed
var errUsage = errors.New("usage error")

type options struct {
	scenario    string
	rows        int
	seed        *int64
	output      string
	useCRLF     bool
	metricsFile string
	replace     bool
	pending     bool
}

// negativeInt matches a bare negative number, which flag would otherwise
// reject as an undefined flag
var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

// parseOptions layers command-line flags over the environment configuration.
// A positional row count wins over -rows; without either, a zero row count
// from the environment means the scenario default.
func parseOptions(command string, args []string, cfg *config.Config, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := options{}
	fs.StringVar(&opts.scenario, "scenario", cfg.Generator.Scenario, "generation scenario (recent, historical)")
	fs.IntVar(&opts.rows, "rows", cfg.Generator.Rows, "number of rows to generate (default: scenario default)")
	seed := fs.Int64("seed", 0, "random seed for reproducible output (default: clock)")
	fs.StringVar(&opts.output, "output", cfg.Generator.Output, "CSV output path")
	fs.BoolVar(&opts.useCRLF, "crlf", cfg.Generator.UseCRLF, "terminate CSV lines with CRLF")
	fs.StringVar(&opts.metricsFile, "metrics-file", cfg.Generator.MetricsFile, "write prometheus metrics to this textfile")
	switch command {
	case cmdSeed:
		fs.BoolVar(&opts.replace, "replace", false, "replace stored transactions with the new batch")
		fs.BoolVar(&opts.pending, "pending", false, "stage the batch for review instead of storing it")
	case cmdServe:
		fs.BoolVar(&opts.replace, "replace", true, "replace stored transactions with the new batch")
	}

	if err := fs.Parse(separatePositionals(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errUsage
		}
		return opts, fmt.Errorf("%w: %v", errUsage, err)
	}

	rowsExplicit := false
	seedExplicit := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			rowsExplicit = true
		case "seed":
			seedExplicit = true
		}
	})

	if seedExplicit {
		opts.seed = seed
	} else {
		opts.seed = cfg.Generator.Seed
	}

	if opts.pending && opts.replace {
		fmt.Fprintln(stderr, "-pending and -replace cannot be combined")
		fs.Usage()
		return opts, errUsage
	}

	switch fs.NArg() {
	case 0:
	case 1:
		rows, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return opts, fmt.Errorf("%w: %q is not an integer", services.ErrInvalidRowCount, fs.Arg(0))
		}
		opts.rows = rows
		rowsExplicit = true
	default:
		fmt.Fprintf(stderr, "expected at most one row count argument, got %d\n", fs.NArg())
		fs.Usage()
		return opts, errUsage
	}

	if !rowsExplicit && opts.rows == 0 {
		scenario, err := models.LookupScenario(opts.scenario)
		if err != nil {
			return opts, err
		}
		opts.rows = scenario.DefaultRows
	}

	return opts, nil
}

// separatePositionals moves bare negative numbers behind a "--" so they reach
// the row count check instead of failing as unknown flags. A negative number
// that is the value of a preceding non-boolean flag stays where it is.
func separatePositionals(fs *flag.FlagSet, args []string) []string {
	flags := make([]string, 0, len(args))
	var positionals []string

	expectValue := false
	for i, arg := range args {
		switch {
		case expectValue:
			flags = append(flags, arg)
			expectValue = false
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			return append(append(flags, "--"), positionals...)
		case negativeInt.MatchString(arg):
			positionals = append(positionals, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			expectValue = needsValue(fs, arg)
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) == 0 {
		return flags
	}
	return append(append(flags, "--"), positionals...)
}

// needsValue reports whether arg names a flag whose value is the next argument
func needsValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return false
	}
	return true
}

func (o options) request() services.GenerateRequest {
	return services.GenerateRequest{
		Scenario: o.scenario,
		Rows:     o.rows,
		Seed:     o.seed,
	}
}
