package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions, one per global flag.
const (
	EnvConfigFile = "MFO_CONFIG"
	EnvLedgerFile = "MFO_LEDGER_FILE"
	EnvSheetURL   = "MFO_SHEET_URL"
	EnvScriptURL  = "MFO_SCRIPT_URL"
	EnvCurrency   = "MFO_CURRENCY"
	EnvVerbose    = "MFO_VERBOSE"
)

// RunExtension attempts to find and execute an external mfo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "mfo-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables.
func extensionEnv() []string {
	return []string{
		EnvConfigFile + "=" + *configFile,
		EnvLedgerFile + "=" + *ledgerFile,
		EnvSheetURL + "=" + *sheetURL,
		EnvScriptURL + "=" + *scriptURL,
		EnvCurrency + "=" + *defaultCurrency,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
