// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v2

import "github.com/prometheus/client_golang/prometheus"

var (
	cursorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "sysview",
			Name:      "cursor_total",
			Help:      "Total number of cursors opened and closed.",
		}, []string{"type"})
	CursorOpenCounter  = cursorCounter.WithLabelValues("open")
	CursorCloseCounter = cursorCounter.WithLabelValues("close")

	CursorFaultCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "sysview",
			Name:      "fault_total",
			Help:      "Total number of cursor faults by error code.",
		}, []string{"code"})

	ViewRowsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "sysview",
			Name:      "rows_total",
			Help:      "Total number of rows materialized by view.",
		}, []string{"view"})

	ViewReadDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mo",
			Subsystem: "sysview",
			Name:      "read_duration_seconds",
			Help:      "Bucketed histogram of full view read duration.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.0, 15),
		}, []string{"view"})
)
