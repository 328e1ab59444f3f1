package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/Wagomu056/time-tracker-core/config"
	"github.com/Wagomu056/time-tracker-core/logger"
	"github.com/Wagomu056/time-tracker-core/tracker"
	"github.com/Wagomu056/time-tracker-core/tracker/store"
)

var (
	configPath string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "time-tracker",
		Short: "Track elapsed time of named tasks",
		Long: `time-tracker assigns sequential ids to named tasks, records their start and
end timestamps, and appends completed tasks to a save file. Task ids survive
process restarts through a small cache file holding the next id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(nextIDCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// ExitCode translates an Execute error into the process exit code. A timed
// command's own exit status passes through so callers can script around the
// wrapped command; tracker and configuration failures map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// newTracker wires a Tracker from the layered configuration. With
// persistence disabled the tracker runs purely in memory and ids restart
// at 0 on every invocation.
func newTracker() (*tracker.Tracker, *logger.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	lg := logger.New(cfg.LogLevel, nil)

	var recordLog store.RecordLog = store.NewMemoryRecordLog()
	var counter store.CounterStore = store.NewMemoryCounterStore()
	if cfg.Persist {
		recordLog = store.NewFileRecordLog(cfg.SaveFilePath)
		counter = store.NewFileCounterStore(cfg.CacheFilePath)
	}

	tr, err := tracker.New(recordLog, counter, lg)
	if err != nil {
		return nil, nil, err
	}
	return tr, lg, nil
}
