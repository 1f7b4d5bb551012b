package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/cc0/utest"
)

func newListCommand(registry *utest.Registry) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered contexts and their test counts",
		Run: func(cmd *cobra.Command, _ []string) {
			contexts := registry.Contexts()
			if sorted {
				slices.SortFunc(contexts, func(a, b *utest.Context) bool {
					return a.Name() < b.Name()
				})
			}
			for _, c := range contexts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d tests)\n", c.Name(), len(c.Tests()))
			}
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "sort by name instead of registration order")
	return cmd
}
