// Copyright (c) 2023, NVIDIA CORPORATION. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozoromo/cuda-arch-discovery/internal/cuda"
	"github.com/ozoromo/cuda-arch-discovery/internal/nvml"
)

func TestRunWritesVariablesToStdout(t *testing.T) {
	config := &Config{
		CudaVersion:   "12.2",
		Capabilities:  "7.5,8.6",
		ForwardCompat: true,
	}

	expected := `CUDA_CAPABILITIES=7.5 8.6
CUDA_FORWARD_CAPABILITY=8.6+PTX
CUDA_CAPABILITIES_AND_FORWARD=7.5 8.6 8.6+PTX
CUDA_ARCH_NAMES=Turing Ampere
CUDA_REAL_ARCHES=sm_75 sm_86
CUDA_VIRTUAL_ARCHES=compute_75 compute_86
CUDA_ARCHES=sm_75 sm_86 compute_86
NVCC_GENCODE=-gencode=arch=compute_75,code=sm_75 -gencode=arch=compute_86,code=sm_86 -gencode=arch=compute_86,code=compute_86
CUDA_JETSON_BUILD=false
`

	buf := new(bytes.Buffer)
	require.NoError(t, run(nvml.Mock{}, config, buf))
	require.Equal(t, expected, buf.String())
}

func TestRunRequiresCudaVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	err := run(nvml.Mock{}, &Config{}, buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cuda-version")
}

func TestRunRejectsUnknownCapability(t *testing.T) {
	config := &Config{
		CudaVersion:  "12.2",
		Capabilities: "99.9",
	}

	buf := new(bytes.Buffer)
	err := run(nvml.Mock{}, config, buf)
	require.ErrorIs(t, err, cuda.ErrUnknownCapability)
	require.Contains(t, err.Error(), "99.9")
}

func TestRunJetsonBuild(t *testing.T) {
	config := &Config{
		CudaVersion:   "11.6",
		Capabilities:  "7.2,8.7",
		ForwardCompat: true,
	}

	buf := new(bytes.Buffer)
	require.NoError(t, run(nvml.Mock{}, config, buf))
	require.Contains(t, buf.String(), "CUDA_JETSON_BUILD=true\n")
	require.Contains(t, buf.String(), "CUDA_ARCHES=sm_72 sm_87 compute_87\n")
}

func TestRunDefaultsToSupportedCapabilities(t *testing.T) {
	config := &Config{
		CudaVersion:   "12.2",
		ForwardCompat: true,
	}

	buf := new(bytes.Buffer)
	require.NoError(t, run(nvml.Mock{}, config, buf))

	out := buf.String()
	require.Contains(t, out, "sm_89", "Ada is a default for CUDA 12.2")
	require.NotContains(t, out, "sm_87", "Jetson parts are not defaults")
	require.NotContains(t, out, "sm_35", "Kepler was dropped before CUDA 12.2")
}

func TestRunDetectsCapabilitiesFromNvml(t *testing.T) {
	config := &Config{
		CudaVersion:   "12.2",
		Detect:        true,
		ForwardCompat: true,
	}

	nvmlMock := nvml.Mock{
		Devices: []nvml.MockDevice{
			{Model: "NVIDIA T4", ComputeMajor: 7, ComputeMinor: 5},
			{Model: "NVIDIA A10", ComputeMajor: 8, ComputeMinor: 6},
		},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, run(nvmlMock, config, buf))
	require.Contains(t, buf.String(), "CUDA_ARCHES=sm_75 sm_86 compute_86\n")
}

func TestSplitCapabilities(t *testing.T) {
	require.Nil(t, splitCapabilities(""))
	require.Equal(t, []string{"8.6"}, splitCapabilities("8.6"))
	require.Equal(t, []string{"7.5", "8.6"}, splitCapabilities("7.5,8.6"))
	require.Equal(t, []string{"7.5", "8.6"}, splitCapabilities(" 7.5 , 8.6 ,"))
}

func TestDetectCapabilitiesDedupes(t *testing.T) {
	nvmlMock := nvml.Mock{
		Devices: []nvml.MockDevice{
			{Model: "NVIDIA A100", ComputeMajor: 8, ComputeMinor: 0},
			{Model: "NVIDIA A100", ComputeMajor: 8, ComputeMinor: 0},
			{Model: "NVIDIA H100", ComputeMajor: 9, ComputeMinor: 0},
		},
	}

	capabilities, err := detectCapabilities(nvmlMock)
	require.NoError(t, err)
	require.Equal(t, []string{"8.0", "9.0"}, capabilities)
}

func TestDetectCapabilitiesFailsWithoutDevices(t *testing.T) {
	_, err := detectCapabilities(nvml.Mock{})
	require.Error(t, err)

	_, err = detectCapabilities(nvml.Mock{ErrorOnInit: true})
	require.Error(t, err)
}
