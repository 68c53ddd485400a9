package cli

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/specdrift/pkg/storage"
)

// newRepository builds the workspace repository for a command: the optional
// specdrift.yaml layout, overridden by whichever directory flags the command
// declares.
func newRepository(cmd *cobra.Command) (*storage.FilesystemRepository, error) {
	root, _ := cmd.Flags().GetString("dir")

	layout, err := storage.LoadLayout(root)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("specs"); v != "" {
		layout.UseCases = v
	}
	if v, _ := cmd.Flags().GetString("bdd"); v != "" {
		layout.BDD = v
	}
	if v, _ := cmd.Flags().GetString("services"); v != "" {
		layout.Services = v
	}

	return storage.NewFilesystemRepository(root, layout), nil
}
