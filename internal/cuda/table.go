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

// Gpu describes one GPU hardware generation: its architecture family, its
// compute capability, and the range of CUDA toolkit versions that can
// generate code for it.
type Gpu struct {
	// ArchName is the human-readable architecture family, e.g. "Ampere".
	ArchName string
	// ComputeCapability is the dotted capability identifier, e.g. "8.6".
	// It is unique across the table and used as a lookup key.
	ComputeCapability string
	// MinCudaVersion is the first toolkit version supporting this GPU
	// (inclusive).
	MinCudaVersion string
	// MaxCudaVersion is the last toolkit version supporting this GPU
	// (inclusive). Empty means the GPU is supported by all newer toolkits.
	MaxCudaVersion string
	// IsJetson marks system-on-module parts. Jetson capabilities are only
	// included in default capability lists when explicitly requested.
	IsJetson bool
	// DontDefaultAfter is the last toolkit version for which this GPU is
	// still part of the default capability list. Empty means no cutoff.
	// The GPU remains individually requestable past the cutoff as long as
	// MaxCudaVersion allows it.
	DontDefaultAfter string
}

// gpus is the hardware table, ordered by compute capability. It is fixed at
// compile time and versioned with the tool itself.
var gpus = []Gpu{
	{
		ArchName:          "Kepler",
		ComputeCapability: "3.0",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "10.2",
	},
	{
		ArchName:          "Kepler",
		ComputeCapability: "3.2",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "10.2",
	},
	{
		ArchName:          "Kepler",
		ComputeCapability: "3.5",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "11.8",
		DontDefaultAfter:  "11.0",
	},
	{
		ArchName:          "Kepler",
		ComputeCapability: "3.7",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "11.8",
		DontDefaultAfter:  "11.0",
	},
	{
		ArchName:          "Maxwell",
		ComputeCapability: "5.0",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
		DontDefaultAfter:  "11.8",
	},
	{
		ArchName:          "Maxwell",
		ComputeCapability: "5.2",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
		DontDefaultAfter:  "11.8",
	},
	{
		ArchName:          "Maxwell",
		ComputeCapability: "5.3",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
		IsJetson:          true,
		DontDefaultAfter:  "11.8",
	},
	{
		ArchName:          "Pascal",
		ComputeCapability: "6.0",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
	},
	{
		ArchName:          "Pascal",
		ComputeCapability: "6.1",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
	},
	{
		ArchName:          "Pascal",
		ComputeCapability: "6.2",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
		IsJetson:          true,
	},
	{
		ArchName:          "Volta",
		ComputeCapability: "7.0",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
	},
	{
		ArchName:          "Volta",
		ComputeCapability: "7.2",
		MinCudaVersion:    "10.0",
		MaxCudaVersion:    "12.9",
		IsJetson:          true,
	},
	{
		ArchName:          "Turing",
		ComputeCapability: "7.5",
		MinCudaVersion:    "10.0",
	},
	{
		ArchName:          "Ampere",
		ComputeCapability: "8.0",
		MinCudaVersion:    "11.0",
	},
	{
		ArchName:          "Ampere",
		ComputeCapability: "8.6",
		MinCudaVersion:    "11.1",
	},
	{
		ArchName:          "Ampere",
		ComputeCapability: "8.7",
		MinCudaVersion:    "11.5",
		IsJetson:          true,
	},
	{
		ArchName:          "Ada",
		ComputeCapability: "8.9",
		MinCudaVersion:    "11.8",
	},
	{
		ArchName:          "Hopper",
		ComputeCapability: "9.0",
		MinCudaVersion:    "11.8",
	},
	{
		ArchName:          "Blackwell",
		ComputeCapability: "10.0",
		MinCudaVersion:    "12.8",
	},
	{
		ArchName:          "Blackwell",
		ComputeCapability: "10.1",
		MinCudaVersion:    "12.8",
	},
	{
		ArchName:          "Blackwell",
		ComputeCapability: "12.0",
		MinCudaVersion:    "12.8",
	},
}

// Gpus returns the hardware table in its canonical order.
func Gpus() []Gpu {
	table := make([]Gpu, len(gpus))
	copy(table, gpus)
	return table
}
