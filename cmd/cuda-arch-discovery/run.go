// Copyright (c) 2023, NVIDIA CORPORATION. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ozoromo/cuda-arch-discovery/internal/cuda"
	"github.com/ozoromo/cuda-arch-discovery/internal/export"
	"github.com/ozoromo/cuda-arch-discovery/internal/nvml"
)

func run(nvmlLib nvml.Interface, config *Config, stdout io.Writer) error {
	if config.CudaVersion == "" {
		return fmt.Errorf("no CUDA version specified: set --cuda-version or $CUDA_VERSION")
	}

	resolved, err := cuda.Resolve(config.CudaVersion)
	if err != nil {
		return err
	}

	capabilities, err := requestedCapabilities(nvmlLib, resolved, config)
	if err != nil {
		return err
	}

	formatted, err := resolved.FormatCapabilities(capabilities, config.ForwardCompat)
	if err != nil {
		return err
	}

	jetson, err := resolved.IsJetsonBuild(capabilities)
	if err != nil {
		return err
	}

	vars := buildVars(formatted, jetson)

	if config.OutputFile == "" {
		return vars.Write(stdout)
	}

	log.Printf("Writing variables to %s", config.OutputFile)
	return vars.WriteToFile(config.OutputFile)
}

// requestedCapabilities determines the capability list to expand: the ones
// present on this machine with --detect, the explicitly requested ones, or
// the toolkit's defaults.
func requestedCapabilities(nvmlLib nvml.Interface, resolved *cuda.Resolved, config *Config) ([]string, error) {
	if config.Detect {
		return detectCapabilities(nvmlLib)
	}

	if capabilities := splitCapabilities(config.Capabilities); len(capabilities) > 0 {
		return capabilities, nil
	}

	capabilities := resolved.DefaultCapabilities(config.WithJetson)
	if len(capabilities) == 0 {
		return nil, fmt.Errorf("CUDA %s supports no default compute capabilities", resolved.CudaVersion)
	}
	return capabilities, nil
}

// splitCapabilities parses a comma-separated capability list, dropping empty
// entries and surrounding whitespace.
func splitCapabilities(s string) []string {
	var capabilities []string
	for _, capability := range strings.Split(s, ",") {
		capability = strings.TrimSpace(capability)
		if capability != "" {
			capabilities = append(capabilities, capability)
		}
	}
	return capabilities
}

// detectCapabilities queries NVML for the compute capabilities of the GPUs
// present on this machine, de-duplicated in device order.
func detectCapabilities(nvmlLib nvml.Interface) ([]string, error) {
	if err := nvmlLib.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize NVML: %v", err)
	}
	defer func() {
		if err := nvmlLib.Shutdown(); err != nil {
			log.Printf("Warning: Shutdown of NVML returned: %v", err)
		}
	}()

	count, err := nvmlLib.GetDeviceCount()
	if err != nil {
		return nil, fmt.Errorf("error getting device count: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no GPU found on this machine")
	}

	var capabilities []string
	seen := make(map[string]bool)
	for i := uint(0); i < count; i++ {
		device, err := nvmlLib.NewDevice(i)
		if err != nil {
			return nil, fmt.Errorf("error getting device %d: %v", i, err)
		}
		major, minor, err := device.GetCudaComputeCapability()
		if err != nil {
			return nil, fmt.Errorf("error getting compute capability of device %d: %v", i, err)
		}
		capability := fmt.Sprintf("%d.%d", major, minor)
		if !seen[capability] {
			seen[capability] = true
			capabilities = append(capabilities, capability)
		}
	}
	return capabilities, nil
}

// buildVars renders the expansion as ordered build variables. List values
// are space-separated so a shell or make fragment can consume them directly.
func buildVars(f *cuda.FormattedCapabilities, jetson bool) export.Vars {
	return export.Vars{
		{Name: "CUDA_CAPABILITIES", Value: strings.Join(f.Capabilities, " ")},
		{Name: "CUDA_FORWARD_CAPABILITY", Value: f.ForwardCapability},
		{Name: "CUDA_CAPABILITIES_AND_FORWARD", Value: strings.Join(f.CapabilitiesAndForward, " ")},
		{Name: "CUDA_ARCH_NAMES", Value: strings.Join(f.ArchNames, " ")},
		{Name: "CUDA_REAL_ARCHES", Value: strings.Join(f.RealArches, " ")},
		{Name: "CUDA_VIRTUAL_ARCHES", Value: strings.Join(f.VirtualArches, " ")},
		{Name: "CUDA_ARCHES", Value: strings.Join(f.Arches, " ")},
		{Name: "NVCC_GENCODE", Value: strings.Join(f.Gencode, " ")},
		{Name: "CUDA_JETSON_BUILD", Value: fmt.Sprintf("%t", jetson)},
	}
}
