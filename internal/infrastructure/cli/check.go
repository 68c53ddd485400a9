package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/specdrift/pkg/application"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every drift check (alignment and traceability)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		outputFormat, _ := cmd.Flags().GetString("output")

		repo, err := newRepository(cmd)
		if err != nil {
			return MapError(err)
		}

		alignReport, err := application.NewAlignmentService(repo).Check()
		if err != nil {
			return MapError(err)
		}
		traceReport, err := application.NewTraceabilityService(repo).Check()
		if err != nil {
			return MapError(err)
		}

		baseline := application.NewBaselineService(repo)
		suppressed := 0
		for _, r := range []*drift.Report{alignReport, traceReport} {
			n, err := baseline.Apply(r)
			if err != nil {
				return MapError(err)
			}
			suppressed += n
		}

		if handled, err := writeReport(cmd.OutOrStdout(), outputFormat, []*drift.Report{alignReport, traceReport}); handled {
			if err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			renderReport(out, "Spec-BDD alignment", alignReport)
			renderReport(out, "UC-Service traceability", traceReport)
			renderSummary(out, []string{"alignment", "traceability"}, []*drift.Report{alignReport, traceReport})
			if suppressed > 0 {
				fmt.Fprintf(out, "%d accepted issue(s) suppressed by baseline\n", suppressed)
			}
		}

		if alignReport.HasIssues() || traceReport.HasIssues() {
			return NewCLIError("drift detected", "Run 'specdrift explain' for issue type details", nil)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("specs", "", "Use case directory (default: specs/use-cases)")
	checkCmd.Flags().String("bdd", "", "BDD feature directory (default: tests/bdd)")
	checkCmd.Flags().String("services", "", "Services directory (default: services)")
	RootCmd.AddCommand(checkCmd)
}
