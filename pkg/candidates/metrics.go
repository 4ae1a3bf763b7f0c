// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package candidates

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation run metrics
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "xpcheck_candidates_validation_duration_seconds",
			Help:    "Duration of candidates file validation in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
	)
	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xpcheck_candidates_validation_failures_total",
			Help: "Total number of failed candidates validations by error code",
		},
		[]string{"code"},
	)

	// Corrective actions
	prunedCandidates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xpcheck_candidates_pruned_total",
			Help: "Total number of candidates removed for lacking a profile",
		},
	)
	fileRewrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xpcheck_candidates_rewrites_total",
			Help: "Total number of candidates files rewritten after pruning",
		},
	)
)
