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

package settings

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "xpcheck_settings_validation_duration_seconds",
			Help:    "Duration of settings file validation in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1},
		},
	)
	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xpcheck_settings_validation_failures_total",
			Help: "Total number of failed settings validations by error code",
		},
		[]string{"code"},
	)
)
