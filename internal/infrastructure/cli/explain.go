package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/specdrift/pkg/domain/alignment"
	"github.com/felixgeelhaar/specdrift/pkg/domain/drift"
	"github.com/felixgeelhaar/specdrift/pkg/domain/traceability"
)

type explanation struct {
	issueType drift.IssueType
	severity  drift.Severity
	what      string
	fix       string
}

var explanations = []explanation{
	{alignment.IssueMissingBDD, drift.SeverityError,
		"Use case has acceptance criteria but no BDD feature file.",
		"Create a BDD feature file with scenarios."},
	{alignment.IssueOrphanedFeature, drift.SeverityWarning,
		"BDD feature exists but doesn't reference any use case.",
		"Add a UC reference to the feature file or its filename."},
	{alignment.IssueCountMismatch, drift.SeverityWarning,
		"Number of BDD scenarios doesn't match acceptance criteria count.",
		"Ensure each criterion has a corresponding scenario."},
	{alignment.IssueBrokenBDDRef, drift.SeverityError,
		"Use case references a BDD file that doesn't exist.",
		"Create the referenced file or update the reference."},
	{alignment.IssueBrokenUCRef, drift.SeverityError,
		"BDD feature references a use case that doesn't exist.",
		"Create the use case or update the BDD file reference."},
	{traceability.IssueUnjustifiedServicelessUC, drift.SeverityError,
		"Use case lists no services and gives no justification.",
		"Add a 'Services Used' table or a justification such as 'Pure UI'."},
	{traceability.IssueOrphanService, drift.SeverityWarning,
		"Service exists but no use case references it.",
		"Remove the service or add a use case that uses it."},
	{traceability.IssueMissingService, drift.SeverityError,
		"Use case references a service that doesn't exist.",
		"Create the service or fix the reference."},
	{traceability.IssueBidirectionalMismatch, drift.SeverityError,
		"Use case and service disagree about their dependency.",
		"Update both documents to declare the dependency in each direction."},
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain every issue type the checks can report",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, e := range explanations {
			label := errorStyle.Render(string(e.severity))
			if e.severity == drift.SeverityWarning {
				label = warningStyle.Render(string(e.severity))
			}
			fmt.Fprintf(out, "%s (%s)\n", titleStyle.Render(string(e.issueType)), label)
			fmt.Fprintf(out, "  %s\n", e.what)
			fmt.Fprintf(out, "  Fix: %s\n\n", e.fix)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(explainCmd)
}
