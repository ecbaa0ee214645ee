package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joeymeijers/fakeusers/internal/fakedata"
)

var ExitFunc = os.Exit

// Stdout en Stderr zijn vervangbaar zodat tests de meldingen kunnen lezen
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	// ErrMissingArgument means no record count was supplied.
	ErrMissingArgument = errors.New("missing record count")
	// ErrInvalidCount means the count is not a non-negative base-10 integer.
	ErrInvalidCount = errors.New("invalid record count")
	// ErrUnexpectedArgument means something followed the count. The flag
	// package stops at the first positional, so a flag placed there would
	// otherwise be dropped.
	ErrUnexpectedArgument = errors.New("unexpected argument after record count")
)

// Meldingen voor de gebruiker, zoals in het oorspronkelijke script
const (
	MissingArgumentMessage = "Bitte gib die Anzahl der zu generierenden Datensätze als Parameter an."
	InvalidCountMessage    = "Ungültige Zahl. Bitte gib eine ganze Zahl als Parameter ein."
	UnexpectedArgMessage   = "Zu viele Parameter. Optionen müssen vor der Anzahl stehen."
)

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// Config houdt alle configopties bij
type Config struct {
	Records    int
	OutputFile string
	Seed       uint64
	Progress   bool
	LogFile    string
}

func newFlagSet(name string, output io.Writer) (*flag.FlagSet, *Config) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.OutputFile, "o", fakedata.DefaultOutputFile, "Output file path")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for reproducible output (0 = random)")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a progress bar on stderr")
	fs.StringVar(&cfg.LogFile, "logfile", "", "Also write logs to this rotated file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] <count>\n", name)
		fs.PrintDefaults()
	}
	return fs, cfg
}

// escapeNegativeCount puts "--" in front of a negative count so the flag
// package hands it over as a positional instead of failing on an unknown flag.
// Values of flags like -o are skipped, so "-o -7" stays a file name.
func escapeNegativeCount(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			return args
		}
		if negativeNumber.MatchString(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++ // volgende argument is de waarde
		}
	}
	return args
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// ParseArgs parses the command line without exiting. The returned error wraps
// ErrMissingArgument, ErrInvalidCount or ErrUnexpectedArgument for the user
// errors.
func ParseArgs(args []string, output io.Writer) (Config, error) {
	fs, cfg := newFlagSet("fakeusers", output)
	if err := fs.Parse(escapeNegativeCount(fs, args)); err != nil {
		return Config{}, err
	}

	if fs.NArg() < 1 {
		return Config{}, ErrMissingArgument
	}
	raw := fs.Arg(0)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidCount, raw)
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("%w: %q", ErrUnexpectedArgument, strings.Join(fs.Args()[1:], " "))
	}
	cfg.Records = n

	if cfg.OutputFile == "" {
		cfg.OutputFile = fakedata.DefaultOutputFile
	}
	return *cfg, nil
}

// Usage prints the usage text to w.
func Usage(w io.Writer) {
	fs, _ := newFlagSet("fakeusers", w)
	fs.Usage()
}

// ParseFlags parses os.Args, prints the user-facing message to Stdout and the
// usage to Stderr, and calls ExitFunc(1) on failure.
func ParseFlags() Config {
	cfg, err := ParseArgs(os.Args[1:], Stderr)
	switch {
	case err == nil:
		return cfg
	case errors.Is(err, ErrMissingArgument):
		fmt.Fprintln(Stdout, MissingArgumentMessage)
		Usage(Stderr)
	case errors.Is(err, ErrInvalidCount):
		fmt.Fprintln(Stdout, InvalidCountMessage)
	case errors.Is(err, ErrUnexpectedArgument):
		fmt.Fprintln(Stdout, UnexpectedArgMessage)
		Usage(Stderr)
	case errors.Is(err, flag.ErrHelp):
		ExitFunc(0)
		return cfg
	}
	ExitFunc(1)
	return cfg
}
