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

package cmd

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/dmt/log"
)

func newProveCommand(ctx *cmdContext) *cobra.Command {
	var in treeInput
	var index uint64
	var outPath string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Generate an inclusion proof",
		Long: `Build a tree like the build command does and generate the inclusion
proof of the leaf at the given index. The proof is printed along with its
hex encoding, which is what the verify command reads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			tree, err := in.buildTree(ctx.hasher, nil)
			if err != nil {
				return err
			}

			proof, err := tree.Prove(index)
			if err != nil {
				return err
			}

			msg, err := proof.Encode()
			if err != nil {
				return errors.Wrap(err, "cannot encode proof")
			}

			fmt.Fprintf(out, "Root: %v\n", tree.Root())
			fmt.Fprintf(out, "%v\n", proof)
			fmt.Fprintf(out, "Encoded: %s\n", hex.EncodeToString(msg))

			if outPath != "" {
				path, err := homedir.Expand(outPath)
				if err != nil {
					return errors.Wrapf(err, "cannot expand path %q", outPath)
				}
				if err := ioutil.WriteFile(path, msg, 0644); err != nil {
					return errors.Wrapf(err, "cannot write proof to %s", path)
				}
				log.L().Infof("Proof written to %s", path)
			}

			return nil
		},
	}

	in.addFlags(cmd)
	cmd.Flags().Uint64Var(&index, "index", 0, "Index of the leaf to prove")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the encoded proof to this file")

	cmd.MarkFlagRequired("index")

	return cmd
}
