package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joeymeijers/fakeusers/internal/config"
	"github.com/joeymeijers/fakeusers/internal/fakedata"
	"github.com/joeymeijers/fakeusers/internal/utils"
)

func main() {
	cfg := config.ParseFlags()
	closer := utils.SetupLogging(cfg.LogFile)

	code := run(cfg, os.Stdout, os.Stderr)
	utils.SafeClose(closer)
	os.Exit(code)
}

// run executes one generation and returns the process exit code. It logs
// through whatever logger SetupLogging or OverrideLogger installed.
func run(cfg config.Config, stdout, progress io.Writer) int {
	start := time.Now()
	utils.LogInfo("Generating %d fake users into %s", cfg.Records, cfg.OutputFile)
	if cfg.Seed != 0 {
		utils.LogInfo("Seed: %d", cfg.Seed)
	}

	gen, err := fakedata.New(cfg.Seed)
	if err != nil {
		utils.LogError("Error creating generator: %v", err)
		return 1
	}

	summary, err := fakedata.GenerateFile(cfg.OutputFile, cfg.Records, gen, fakedata.Options{
		Progress:       cfg.Progress,
		ProgressWriter: progress,
	})
	if err != nil {
		utils.LogError("Error writing %s: %v", cfg.OutputFile, err)
		return 1
	}

	utils.LogInfo("Generation completed in %v", time.Since(start))
	fmt.Fprintln(stdout, summary.Message())
	return 0
}
