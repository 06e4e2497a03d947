package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sghaida/docpatterns/factory"
)

func newFactoryCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Generate documents through their factories",
		Long: `factory asks a creator for each document kind and prints the
assembled header and body. Without --kind every kind is generated in demo order.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if !c.Flags().Changed("kind") {
				kind = a.cfg.Demo.FactoryKind
			}
			return a.runFactory(factory.DefaultRegistry(), kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "document kind to generate (resume, report)")
	return cmd
}

func (a *app) runFactory(reg *factory.Registry, kind string) error {
	kinds := factory.DemoKinds
	if kind != "" {
		kinds = []factory.Kind{factory.Kind(strings.ToLower(strings.TrimSpace(kind)))}
	}

	for _, k := range kinds {
		text, err := reg.Generate(k)
		if err != nil {
			return a.fail(err, "Available kinds: "+joinKinds(reg.Kinds()))
		}
		a.out.Line(text)
		a.log.Debug("factory.generated", "kind", string(k))
	}
	return nil
}

func joinKinds(kinds []factory.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
