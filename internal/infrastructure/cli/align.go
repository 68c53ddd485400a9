package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/specdrift/pkg/application"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Check alignment between use case specs and BDD feature files",
	Long: `Align detects spec-code drift between use cases and BDD tests:
use cases without feature files, orphaned features, broken references,
and acceptance criteria counts that no longer match scenario counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		outputFormat, _ := cmd.Flags().GetString("output")
		verbose, _ := cmd.Flags().GetBool("verbose")

		repo, err := newRepository(cmd)
		if err != nil {
			return MapError(err)
		}

		service := application.NewAlignmentService(repo)
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
			if verbose {
				useCases, _ := repo.ScanUseCases()
				features, _ := repo.ScanFeatures()
				for _, id := range slices.Sorted(maps.Keys(useCases)) {
					fmt.Fprintf(out, "  %s: %d acceptance criteria\n", id, len(useCases[id].AcceptanceCriteria))
				}
				for _, name := range slices.Sorted(maps.Keys(features)) {
					f := features[name]
					ref := ""
					if f.UCReference != "" {
						ref = fmt.Sprintf(" (-> %s)", f.UCReference)
					}
					fmt.Fprintf(out, "  %s: %d scenarios%s\n", name, len(f.Scenarios), ref)
				}
				fmt.Fprintln(out)
			}
			renderReport(out, fmt.Sprintf("Spec-BDD alignment (%d use cases, %d features)",
				report.Counts.UseCases, report.Counts.Features), report)
			if suppressed > 0 {
				fmt.Fprintf(out, "%d accepted issue(s) suppressed by baseline\n", suppressed)
			}
		}

		if report.HasIssues() {
			return NewCLIError("alignment drift detected", "Run 'specdrift explain' for issue type details", nil)
		}
		return nil
	},
}

func init() {
	alignCmd.Flags().String("specs", "", "Use case directory (default: specs/use-cases)")
	alignCmd.Flags().String("bdd", "", "BDD feature directory (default: tests/bdd)")
	alignCmd.Flags().BoolP("verbose", "v", false, "List every parsed use case and feature")
	RootCmd.AddCommand(alignCmd)
}
