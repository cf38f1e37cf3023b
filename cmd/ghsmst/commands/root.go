// SPDX-License-Identifier: MIT

// Package commands implements the ghsmst command line.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ghsmst/config"
)

// cli carries the state shared by one command tree: the configuration being
// filled, the viper instance it is read through, and the logger built from it.
type cli struct {
	conf   *config.Config
	v      *viper.Viper
	logger *logrus.Entry
}

// NewRootCmd returns the root command with run, generate and suite attached.
func NewRootCmd() *cobra.Command {
	c := &cli{
		conf: config.NewDefaultConfig(),
		v:    viper.New(),
	}

	root := &cobra.Command{
		Use:          "ghsmst",
		Short:        "Distributed minimum spanning tree (GHS) emulator",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("log", c.conf.LogLevel, "debug, info, warn, error, fatal, panic")
	pf.String("log-file", c.conf.LogFile, "Also write logs to this file")
	pf.String("config-dir", c.conf.ConfigDir, "Directory searched for ghsmst.toml|yaml|json")
	pf.Int64("seed", c.conf.Seed, "Random seed; 0 derives one from the clock")

	root.AddCommand(
		c.newRunCmd(),
		c.newGenerateCmd(),
		c.newSuiteCmd(),
	)

	return root
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	if err := c.bindFlagsLoadViper(cmd); err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"log":        c.conf.LogLevel,
		"log-file":   c.conf.LogFile,
		"config-dir": c.conf.ConfigDir,
		"seed":       c.conf.Seed,
		"trials":     c.conf.Trials,
		"trace":      c.conf.Trace,
		"input":      c.conf.Input,
		"verbose":    c.conf.Verbose,
	}).Debug(cmd.Name())

	return nil
}

// bindFlagsLoadViper binds all flags and reads the config into viper.
func (c *cli) bindFlagsLoadViper(cmd *cobra.Command) error {
	// Flags of this command plus the persistent flags of the root.
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// First unmarshal to learn --config-dir.
	if err := c.v.Unmarshal(c.conf); err != nil {
		return err
	}

	c.v.SetConfigName(config.ConfigName)
	c.v.AddConfigPath(c.conf.ConfigDir)

	found := true
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		found = false
	}

	// Second unmarshal to pick up the config file.
	if err := c.v.Unmarshal(c.conf); err != nil {
		return err
	}

	c.logger = c.conf.Logger()
	if found {
		c.logger.Debugf("Using config file: %s", c.v.ConfigFileUsed())
	} else {
		c.logger.Debugf("No config file found in: %s", c.conf.ConfigDir)
	}

	return nil
}
