package cmd

import (
	"errors"
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/selftest"
)

var profileDir string

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the codec over every input",
	Args:  cobra.NoArgs,
	RunE:  runSelftest,
}

func init() {
	selftestCmd.Flags().StringVar(&profileDir, "profile", "", "write a CPU profile to this directory")
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) error {
	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	}
	report := selftest.Run()
	out := cmd.OutOrStdout()
	for _, c := range report.Checks {
		status := "ok"
		if !c.Passed() {
			status = fmt.Sprintf("FAIL (%d)", c.Failures)
		}
		fmt.Fprintf(out, "%-22s %4d cases  %s\n", c.Name, c.Cases, status)
	}
	fmt.Fprintf(out, "double bit errors      %4d cases  %d misdecoded (not correctable)\n",
		report.DoubleFlips, report.DoubleMisdecoded)
	if !report.Passed() {
		return errors.New("selftest failed")
	}
	return nil
}
