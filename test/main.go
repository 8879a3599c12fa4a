package main

import (
	"fmt"
	"leaguedecks-backend/internal/components/serviceutil"
	"leaguedecks-backend/internal/components/telemetry"
	"leaguedecks-backend/test/fuzzing"
	"os"

	"github.com/spf13/cobra"
)

var (
	pathFlag string
	minSteps uint64
	maxSteps uint64
)

var rootCmd = &cobra.Command{
	Use:   "test",
	Short: "the leaguedecks backend test runner",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(true)
	},
}

var fuzzCmd = &cobra.Command{
	Use:   "fuzz",
	Short: "run a fuzzer until it finds a failing path",
}

var fuzzPipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "fuzz the probe, collector and snapshot builder against an unreliable store",
	RunE: func(cmd *cobra.Command, args []string) error {
		var path fuzzing.Path
		if pathFlag != "" {
			var err error
			path, err = fuzzing.ParsePath(pathFlag)
			if err != nil {
				return err
			}
		}

		f, err := fuzzing.New(telemetry.SlogAPI{}, fuzzing.PipelineProvider{}, minSteps, maxSteps, path)
		if err != nil {
			return err
		}
		f.StartFuzzTest(cmd.Context())
		return nil
	},
}

func init() {
	fuzzCmd.PersistentFlags().StringVarP(&pathFlag, "path", "p", "", "replay a fuzzer with a given fuzzing path (seed:steps)")
	fuzzCmd.PersistentFlags().Uint64Var(&minSteps, "min-steps", 10, "the minimum amount of steps that must be executed on any given fuzz target")
	fuzzCmd.PersistentFlags().Uint64Var(&maxSteps, "max-steps", 100, "the maximum amount of steps that can be executed on any given fuzz target")
	fuzzCmd.AddCommand(fuzzPipelineCmd)
	rootCmd.AddCommand(fuzzCmd)
}

func main() {
	err := rootCmd.ExecuteContext(serviceutil.SignalContext())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
