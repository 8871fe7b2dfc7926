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

func newHashersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hashers",
		Short: "List the available hash functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range hashing.Hashers() {
				hasher, err := hashing.NewTreeHasher(id)
				if err != nil {
					return err
				}
				marker := ""
				if id == hashing.DefaultHasher {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %2d bytes%s\n", id, hasher.Size(), marker)
			}
			return nil
		},
	}
}
