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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbva/dmt/crypto/hashing"
)

func newBuildCommand(ctx *cmdContext) *cobra.Command {
	var in treeInput

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a tree and print its root",
		Long: `Build a tree from the given elements, insert the appended ones one at a
time and print the leaf count, the depth and the root digest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			tree, err := in.buildTree(ctx.hasher, func(index uint64, root hashing.Digest) {
				fmt.Fprintf(out, "Inserted index %d: root %v\n", index, root)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Hasher: %s\n", tree.Hasher().ID())
			fmt.Fprintf(out, "Leaves: %d\n", tree.LeafCount())
			fmt.Fprintf(out, "Depth: %d\n", tree.Depth())
			fmt.Fprintf(out, "Root: %v\n", tree.Root())
			return nil
		},
	}

	in.addFlags(cmd)

	return cmd
}
