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

package merkle

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	for _, c := range Collectors() {
		require.NoError(t, registry.Register(c))
	}

	tree := newTestTree(t, xorHasher(t), bytesOf(1, 2, 3))
	tree.Insert([]byte{4})
	proof, err := tree.Prove(0)
	require.NoError(t, err)
	tree.Verify([]byte{1}, proof)
	tree.Verify([]byte{2}, proof)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Equal(t, []string{
		"dmt_merkle_build_total",
		"dmt_merkle_insert_total",
		"dmt_merkle_leaves",
		"dmt_merkle_prove_total",
		"dmt_merkle_verify_failed_total",
		"dmt_merkle_verify_total",
	}, names)

	for _, f := range families {
		if f.GetName() == "dmt_merkle_leaves" {
			require.Equal(t, 4.0, f.GetMetric()[0].GetGauge().GetValue())
		}
	}
}
