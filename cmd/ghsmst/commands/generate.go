// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ghsmst/builder"
	"github.com/katalvlaran/ghsmst/edgelist"
)

func (c *cli) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Print a random connected graph in the text format",
		Args:    cobra.NoArgs,
		PreRunE: c.loadConfig,
		RunE:    c.generate,
	}

	f := cmd.Flags()
	f.Int("nodes", c.conf.Nodes, "Number of nodes")
	f.Float64("density", c.conf.Density, "Probability of each extra edge beyond a random spanning tree")
	f.Bool("distinct", c.conf.Distinct, "Use a random permutation of 0..E-1 as weights")
	f.Int64("max-weight", c.conf.MaxWeight, "Upper bound of uniform weights when not distinct")

	return cmd
}

func (c *cli) generate(cmd *cobra.Command, args []string) error {
	seed := c.conf.ResolveSeed()

	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	if c.conf.Distinct {
		opts = append(opts, builder.WithDistinctWeights())
	} else {
		if c.conf.MaxWeight < 1 {
			c.conf.MaxWeight = 1
		}
		opts = append(opts, builder.WithUniformWeight(1, c.conf.MaxWeight))
	}

	g, err := builder.BuildGraph(c.conf.Nodes, opts, builder.RandomConnected(c.conf.Density))
	if err != nil {
		return err
	}
	c.logger.WithField("seed", seed).WithField("edges", g.Len()).Debug("Generated graph")

	return edgelist.WriteWithHeader(cmd.OutOrStdout(), g)
}
