package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sghaida/docpatterns/guide"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Print the advantages and disadvantages of both patterns",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := guide.Load()
			if err != nil {
				return a.fail(err, "")
			}
			a.out.Heading("Factory vs Mixin")
			if err := c.Compare(a.out.Out); err != nil {
				return a.fail(err, "")
			}
			return nil
		},
	}
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "explain <pattern>",
		Short:     "Explain one pattern",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"factory", "mixin"},
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := guide.Load()
			if err != nil {
				return a.fail(err, "")
			}
			if err := c.Explain(a.out.Out, args[0]); err != nil {
				return a.fail(err, "Known patterns: "+strings.Join(c.Names(), ", "))
			}
			return nil
		},
	}
}
