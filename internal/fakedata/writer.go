package fakedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/joeymeijers/fakeusers/internal/utils"
)

// DefaultOutputFile is used when no output path is given.
const DefaultOutputFile = "fake_users.csv"

// averageRecordSize is a rough mean row length in bytes, used for the disk
// space estimate only.
const averageRecordSize = 45

// Options controls the writer's side channels.
type Options struct {
	// Progress renders a progress bar on ProgressWriter (stderr when nil).
	Progress       bool
	ProgressWriter io.Writer
}

// Summary describes a finished run.
type Summary struct {
	Count      int
	File       string
	Strategies map[Strategy]int
}

// Message is the confirmation shown to the user after a successful run.
func (s Summary) Message() string {
	return fmt.Sprintf("%d Datensätze wurden mit 'fake+' E-Mails und realistischen Passwörtern in '%s' gespeichert.", s.Count, s.File)
}

// StrategyBreakdown formats the strategy histogram in declaration order.
func (s Summary) StrategyBreakdown() string {
	keys := make([]Strategy, 0, len(s.Strategies))
	for k := range s.Strategies {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, s.Strategies[k]))
	}
	return strings.Join(parts, ", ")
}

// EstimateSize returns the approximate file size for count records.
func EstimateSize(count int) uint64 {
	if count <= 0 {
		return 0
	}
	return uint64(count) * averageRecordSize
}

// WriteRecords writes count rows of (identifier, secret) to w as CSV without
// a header.
func WriteRecords(w io.Writer, g *Generator, count int, opts Options) (Summary, error) {
	summary := Summary{Strategies: make(map[Strategy]int)}

	var bar *pb.ProgressBar
	if opts.Progress {
		out := opts.ProgressWriter
		if out == nil {
			out = os.Stderr
		}
		bar = pb.New(count).SetWriter(out).Start()
		defer bar.Finish()
	}

	writer := csv.NewWriter(w)
	// rijen eindigen op de newline van het platform, net als de andere tekstbestanden
	writer.UseCRLF = utils.GetNewline() == "\r\n"

	for i := 0; i < count; i++ {
		rec := g.Next()
		if err := writer.Write([]string{rec.Identifier, rec.Secret}); err != nil {
			return summary, fmt.Errorf("write record %d: %w", i+1, err)
		}
		summary.Count++
		summary.Strategies[rec.Strategy]++
		if bar != nil {
			bar.Increment()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return summary, fmt.Errorf("flush records: %w", err)
	}
	return summary, nil
}

// GenerateFile truncates path and fills it with count records. A file that
// could not be written completely is removed.
func GenerateFile(path string, count int, g *Generator, opts Options) (Summary, error) {
	utils.CheckDiskSpace(path, EstimateSize(count))

	f, err := os.Create(path)
	if err != nil {
		return Summary{File: path}, fmt.Errorf("open output file: %w", err)
	}

	summary, err := WriteRecords(f, g, count, opts)
	summary.File = path
	closeErr := utils.SafeClose(f)
	if err == nil && closeErr != nil {
		err = fmt.Errorf("close output file: %w", closeErr)
	}
	if err != nil {
		utils.SafeRemove(path)
		return summary, err
	}

	utils.LogInfo("Wrote %d records to %s", summary.Count, path)
	if summary.Count > 0 {
		utils.LogDebug("Secret strategies: %s", summary.StrategyBreakdown())
	}
	return summary, nil
}
