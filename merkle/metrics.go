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

import "github.com/prometheus/client_golang/prometheus"

const namespace = "dmt"
const subSystem = "merkle"

var (
	BuildTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "build_total",
			Help:      "Number of trees built from an initial set of elements.",
		},
	)
	InsertTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "insert_total",
			Help:      "Number of elements appended to existing trees.",
		},
	)
	ProveTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "prove_total",
			Help:      "Number of inclusion proofs generated.",
		},
	)
	VerifyTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "verify_total",
			Help:      "Number of inclusion proofs verified.",
		},
	)
	VerifyFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "verify_failed_total",
			Help:      "Number of inclusion proofs that did not verify.",
		},
	)
	Leaves = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "leaves",
			Help:      "Leaf count of the last tree built or grown.",
		},
	)
)

// Collectors returns every metric of the package, ready to be
// registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		BuildTotal,
		InsertTotal,
		ProveTotal,
		VerifyTotal,
		VerifyFailedTotal,
		Leaves,
	}
}
