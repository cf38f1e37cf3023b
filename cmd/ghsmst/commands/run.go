// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ghsmst/edgelist"
	"github.com/katalvlaran/ghsmst/ghs"
	"github.com/katalvlaran/ghsmst/prim_kruskal"
	"github.com/katalvlaran/ghsmst/trace"
)

func (c *cli) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run GHS on a graph and print 1 if it matches Kruskal, 0 otherwise",
		Long: `Reads a graph in the text format

    node_count edge_count
    u v weight      (edge_count lines)

from file, --input or stdin, runs the distributed protocol under a random
schedule and compares the tree with the Kruskal oracle.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: c.loadConfig,
		RunE:    c.runGHS,
	}

	f := cmd.Flags()
	f.String("input", c.conf.Input, "Graph file; empty or - reads stdin")
	f.BoolP("verbose", "v", c.conf.Verbose, "Print the tree and run statistics")
	f.String("trace", c.conf.Trace, "Write a JSON event trace to this file")
	f.Int("trials", c.conf.Trials, "Number of runs, with seeds seed, seed+1, ...")

	return cmd
}

/*******************************************************************************
* RUN
*******************************************************************************/

func (c *cli) runGHS(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	input := c.conf.Input
	if len(args) == 1 {
		input = args[0]
	}
	g, err := readGraph(input)
	if err != nil {
		return err
	}

	want, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return err
	}

	var rec *trace.Recorder
	if c.conf.Trace != "" {
		f, err := os.Create(c.conf.Trace)
		if err != nil {
			return err
		}
		defer f.Close()
		rec = trace.NewRecorder(f)
	}

	seed := c.conf.ResolveSeed()
	trials := c.conf.Trials
	if trials < 1 {
		trials = 1
	}

	match := true
	for i := 0; i < trials; i++ {
		s := seed + int64(i)
		opts := []ghs.Option{ghs.WithSeed(s), ghs.WithLogger(c.logger.WithField("seed", s))}
		if rec != nil {
			opts = append(opts, ghs.WithObserver(rec))
		}

		res, err := ghs.Run(g, opts...)
		if err != nil {
			return err
		}
		ok := res.Tree.Equal(want)
		match = match && ok

		c.logger.WithFields(logrus.Fields{
			"trial":  i + 1,
			"seed":   s,
			"match":  ok,
			"weight": res.Tree.TotalWeight(),
		}).Debug("Trial done")

		if c.conf.Verbose {
			if err := printTrial(out, i+1, s, res, ok); err != nil {
				return err
			}
		}
	}

	if rec != nil {
		if err := rec.Flush(); err != nil {
			return err
		}
	}

	verdict := 0
	if match {
		verdict = 1
	}
	_, err = fmt.Fprintln(out, verdict)

	return err
}

func printTrial(w io.Writer, trial int, seed int64, res *ghs.Result, ok bool) error {
	st := res.Stats
	if _, err := fmt.Fprintf(w, "# trial %d seed %d weight %d match %t rounds %d activations %d wakeups %d messages %d\n",
		trial, seed, res.Tree.TotalWeight(), ok, st.Rounds, st.Activations, st.WakeUps, st.Delivered); err != nil {
		return err
	}

	return edgelist.WriteWithHeader(w, res.Tree)
}

// readGraph loads a graph from path, or from stdin when path is empty or "-".
func readGraph(path string) (*edgelist.Graph, error) {
	if path == "" || path == "-" {
		return edgelist.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return edgelist.Read(f)
}
