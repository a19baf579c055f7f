package cmd

import (
	"fmt"
	"os"
	"os/exec"
)

// Environment variables handed to extension processes, so they see the
// same book and currency as the invoking command line.
const (
	EnvBookFile = "HALFHALF_BOOK"
	EnvCurrency = "HALFHALF_CURRENCY"
)

// RunExtension attempts to find and execute an external halfhalf-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "halfhalf-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		// Not an error, the commander will report the unknown subcommand.
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvBookFile+"="+*bookFile)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+*currency)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
