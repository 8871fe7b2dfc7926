/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cmd implements the dmt command line: it builds and grows
// Merkle trees from plain element lists, and generates and checks
// inclusion proofs.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	v "github.com/spf13/viper"

	"github.com/bbva/dmt/build"
	"github.com/bbva/dmt/crypto/hashing"
)

const defaultConfigFile = "~/.dmt.yaml"

// NewRootCommand returns the dmt command with every subcommand attached.
// Each call returns an independent command tree with its own
// configuration.
func NewRootCommand() *cobra.Command {
	ctx := newCmdContext(v.New())

	cmd := &cobra.Command{
		Use:   "dmt",
		Short: "Dynamic Merkle tree tool",
		Long: `dmt builds append-only Merkle trees from lists of elements, grows them
one element at a time and produces inclusion proofs that can be verified
against the root digest alone.`,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.configure()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.dumpMetrics(cmd.OutOrStderr())
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&ctx.logLevel, "log", "l", "silent", "Choose between log levels: silent, error, warn, info, debug and trace")
	f.StringVar(&ctx.hasherID, "hasher", hashing.DefaultHasher, fmt.Sprintf("Hash function used to build the tree: %s", strings.Join(hashing.Hashers(), ", ")))
	f.StringVarP(&ctx.configFile, "config", "c", defaultConfigFile, "Path to a YAML config file")
	f.BoolVar(&ctx.metrics, "metrics", false, "Print the collected metrics after running the command")

	// Lookups
	ctx.viper.BindPFlag("log", f.Lookup("log"))
	ctx.viper.BindPFlag("hasher", f.Lookup("hasher"))
	ctx.viper.BindPFlag("metrics", f.Lookup("metrics"))

	cmd.AddCommand(
		newBuildCommand(ctx),
		newProveCommand(ctx),
		newVerifyCommand(ctx),
		newHashersCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of dmt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.GetInfo().Short())
		},
	}
}
