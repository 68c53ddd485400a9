package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/specdrift/pkg/application"
)

var acceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept current drift by snapshotting it into the baseline",
	Long: `Accept records every issue the checks currently report into
.specdrift/baseline.json. Later runs suppress exactly those issues, so only
new drift fails the build. Re-run accept to regenerate the snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

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

		b, err := application.NewBaselineService(repo).Accept(alignReport, traceReport)
		if err != nil {
			return MapError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Drift accepted. %d issue(s) recorded in baseline.\n", len(b.Accepted))
		return nil
	},
}

func init() {
	acceptCmd.Flags().String("specs", "", "Use case directory (default: specs/use-cases)")
	acceptCmd.Flags().String("bdd", "", "BDD feature directory (default: tests/bdd)")
	acceptCmd.Flags().String("services", "", "Services directory (default: services)")
	RootCmd.AddCommand(acceptCmd)
}
