package cli

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run NAME -- COMMAND [ARGS...]",
	Short: "Time a command as a named task",
	Long: `run creates a task, starts it, executes the given command, and ends the
task when the command exits. The elapsed duration is printed and the
completed task is appended to the save file.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		tr, lg, err := newTracker()
		if err != nil {
			return err
		}

		id, err := tr.NewTask(name)
		if err != nil {
			// Counter persistence failed; allocating further ids would risk
			// reuse after a restart, so stop here.
			return err
		}
		if !tr.StartTask(id) {
			return fmt.Errorf("task %d could not be started", id)
		}

		command := exec.Command(args[1], args[2:]...)
		command.Stdin = os.Stdin
		command.Stdout = cmd.OutOrStdout()
		command.Stderr = cmd.ErrOrStderr()
		runErr := command.Run()

		elapsed, ok := tr.EndTask(id)
		if !ok {
			return fmt.Errorf("task %d was not running", id)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (task %d): %s\n", name, id, elapsed.Round(time.Millisecond))

		lg.Command("run", elapsed, map[string]any{
			"task_name":   name,
			"task_id":     id,
			"command_ok":  runErr == nil,
			"tasks_timed": tr.TaskCount(),
		})

		return runErr
	},
}
