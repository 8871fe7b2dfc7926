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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/dmt/merkle"
)

func newVerifyCommand(ctx *cmdContext) *cobra.Command {
	var value, proofPath, proofHex, root string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an inclusion proof",
		Long: `Verify that a value is included under a root digest using a proof
generated by the prove command. The tree itself is not needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			proof, err := readProof(proofPath, proofHex)
			if err != nil {
				return err
			}
			if proof.HasherID != "" && proof.HasherID != ctx.hasher.ID() {
				return errors.Wrapf(ErrHasherMismatch, "proof uses %s, configured hasher is %s", proof.HasherID, ctx.hasher.ID())
			}

			rootDigest, err := parseDigest(root, ctx.hasher)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Verifying index %d of %d leaves against root %v\n", proof.Index, proof.LeafCount, rootDigest)

			if !merkle.Verify(ctx.hasher, []byte(value), proof, rootDigest) {
				fmt.Fprintf(out, "Verify: KO\n")
				return ErrProofNotVerified
			}
			fmt.Fprintf(out, "Verify: OK\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Element whose inclusion is checked")
	cmd.Flags().StringVarP(&proofPath, "proof", "p", "", "File with the encoded proof")
	cmd.Flags().StringVar(&proofHex, "proof-hex", "", "Hex encoded proof")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Hex encoded root digest")

	cmd.MarkFlagRequired("value")
	cmd.MarkFlagRequired("root")

	return cmd
}
