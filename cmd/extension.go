package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external stmt-<subcommand> binary.
// stdin is passed to the extension, nil means the process stdin.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string, stdin io.Reader) (bool, int) {
	externalCmdName := "stmt-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if verbose() {
			log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	if stdin != nil {
		cmd.Stdin = stdin
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved global flags as environment variables
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0
}

func extensionEnv() []string {
	return []string{
		EnvInput + "=" + setting(*inputFile, EnvInput, ""),
		EnvSelect + "=" + setting(*selector, EnvSelect, ""),
		EnvVocabulary + "=" + setting(*vocabularyFile, EnvVocabulary, ""),
		EnvCurrency + "=" + Currency(),
		EnvVerbose + "=" + strconv.FormatBool(verbose()),
	}
}
