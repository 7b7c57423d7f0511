/**
# Copyright (c) 2023, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package cuda

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableCapabilitiesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, gpu := range gpus {
		require.False(t, seen[gpu.ComputeCapability],
			"compute capability %q appears twice in the GPU table", gpu.ComputeCapability)
		seen[gpu.ComputeCapability] = true
	}
}

func TestTableVersionsParse(t *testing.T) {
	for _, gpu := range gpus {
		_, err := parseVersion(gpu.MinCudaVersion)
		require.NoError(t, err, "MinCudaVersion of %q", gpu.ComputeCapability)

		if gpu.MaxCudaVersion != "" {
			_, err := parseVersion(gpu.MaxCudaVersion)
			require.NoError(t, err, "MaxCudaVersion of %q", gpu.ComputeCapability)
		}
		if gpu.DontDefaultAfter != "" {
			_, err := parseVersion(gpu.DontDefaultAfter)
			require.NoError(t, err, "DontDefaultAfter of %q", gpu.ComputeCapability)
		}
	}
}

func TestTableEntriesAreComplete(t *testing.T) {
	for _, gpu := range gpus {
		require.NotEmpty(t, gpu.ArchName, "entry %q has no architecture name", gpu.ComputeCapability)
		require.NotEmpty(t, gpu.ComputeCapability, "entry for %q has no compute capability", gpu.ArchName)
		require.NotEmpty(t, gpu.MinCudaVersion, "entry %q has no minimum CUDA version", gpu.ComputeCapability)
	}
}

func TestGpusReturnsACopy(t *testing.T) {
	table := Gpus()
	require.Equal(t, gpus, table)

	table[0].ArchName = "mutated"
	require.NotEqual(t, "mutated", gpus[0].ArchName)
}
