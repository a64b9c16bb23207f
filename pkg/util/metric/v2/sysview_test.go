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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSysviewMetricsRegistered(t *testing.T) {
	CursorOpenCounter.Inc()
	CursorFaultCounter.WithLabelValues("ErrTypeMismatch").Inc()
	ViewRowsCounter.WithLabelValues("sys.databases").Add(3)
	ViewReadDurationHistogram.WithLabelValues("sys.databases").Observe(0.01)

	families, err := GetPrometheusGatherer().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["mo_sysview_cursor_total"])
	require.True(t, names["mo_sysview_fault_total"])
	require.True(t, names["mo_sysview_rows_total"])
	require.True(t, names["mo_sysview_read_duration_seconds"])
}
