package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/specdrift/pkg/application"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Check bidirectional traceability between use cases and services",
	Long: `Trace validates that every use case declares the services it depends on,
that every service lists its consumers, and that the two declarations agree
in both directions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		outputFormat, _ := cmd.Flags().GetString("output")

		repo, err := newRepository(cmd)
		if err != nil {
			return MapError(err)
		}

		service := application.NewTraceabilityService(repo)
		report, err := service.Check()
		if err != nil {
			return MapError(err)
		}

		suppressed, err := application.NewBaselineService(repo).Apply(report)
		if err != nil {
			return MapError(err)
		}

		if handled, err := writeReport(cmd.OutOrStdout(), outputFormat, report); handled {
			if err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			renderReport(out, fmt.Sprintf("UC-Service traceability (%d use cases, %d services)",
				report.Counts.UseCases, report.Counts.Services), report)
			if suppressed > 0 {
				fmt.Fprintf(out, "%d accepted issue(s) suppressed by baseline\n", suppressed)
			}
		}

		if report.HasIssues() {
			return NewCLIError("traceability drift detected", "Run 'specdrift explain' for issue type details", nil)
		}
		return nil
	},
}

func init() {
	traceCmd.Flags().String("specs", "", "Use case directory (default: specs/use-cases)")
	traceCmd.Flags().String("services", "", "Services directory (default: services)")
	RootCmd.AddCommand(traceCmd)
}
