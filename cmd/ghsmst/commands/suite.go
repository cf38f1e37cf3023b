// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ghsmst/suite"
)

func (c *cli) newSuiteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "suite FILE",
		Short:   "Run a TOML suite of GHS checks; exits non-zero on failure",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.loadConfig,
		RunE:    c.runSuite,
	}
}

func (c *cli) runSuite(cmd *cobra.Command, args []string) error {
	s, err := suite.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		s.Seed = c.conf.Seed
	}

	rep, err := s.Run(c.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range rep.Cases {
		if r.OK() {
			fmt.Fprintf(out, "PASS %-24s %d/%d weight %d\n", r.Name, r.Passed, r.Trials, r.Weight)
		} else {
			fmt.Fprintf(out, "FAIL %-24s %d/%d %v\n", r.Name, r.Passed, r.Trials, r.Err)
		}
	}

	if failed := rep.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(rep.Cases))
	}

	return nil
}
