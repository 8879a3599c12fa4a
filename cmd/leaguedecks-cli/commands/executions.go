package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	executionsCmd.AddCommand(latestExecutionCmd)
	rootCmd.AddCommand(executionsCmd)
}

var executionsCmd = &cobra.Command{
	Use:   "executions",
	Short: "Inspects execution records.",
}

var latestExecutionCmd = &cobra.Command{
	Use:   "latest",
	Short: "Prints the most recently started execution.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		record, err := a.Orchestrator.Latest(cmd.Context())
		if err != nil {
			return err
		}
		printExecution(record)
		return nil
	},
}
