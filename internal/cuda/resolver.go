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

// Package cuda resolves CUDA toolkit versions against the GPU hardware table
// and expands compute capability lists into nvcc architecture tokens and
// gencode flags.
package cuda

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Resolved holds the view of the hardware table for one toolkit version.
// It is a pure function of the table and the version: construct one per
// toolkit version and discard it, nothing is cached or shared.
type Resolved struct {
	// CudaVersion is the toolkit version this view was resolved for.
	CudaVersion string

	// SupportedGpus are the table entries supported by CudaVersion, in
	// table order.
	SupportedGpus []Gpu

	// CapabilityToName maps a supported compute capability to its
	// architecture family name.
	CapabilityToName map[string]string

	// ArchNameToCapabilities maps an architecture family name to its
	// supported compute capabilities, in table order.
	ArchNameToCapabilities map[string][]string

	version *semver.Version
	table   []Gpu
}

// Resolve filters the hardware table by the given toolkit version and builds
// the capability lookups.
func Resolve(cudaVersion string) (*Resolved, error) {
	return resolve(gpus, cudaVersion)
}

func resolve(table []Gpu, cudaVersion string) (*Resolved, error) {
	toolkit, err := parseVersion(cudaVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CUDA version: %w", err)
	}

	r := &Resolved{
		CudaVersion:            cudaVersion,
		CapabilityToName:       make(map[string]string),
		ArchNameToCapabilities: make(map[string][]string),
		version:                toolkit,
		table:                  table,
	}

	for _, gpu := range table {
		supported, err := gpu.isSupported(toolkit)
		if err != nil {
			return nil, err
		}
		if !supported {
			continue
		}
		if _, ok := r.CapabilityToName[gpu.ComputeCapability]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCapability, gpu.ComputeCapability)
		}
		r.SupportedGpus = append(r.SupportedGpus, gpu)
		r.CapabilityToName[gpu.ComputeCapability] = gpu.ArchName
		r.ArchNameToCapabilities[gpu.ArchName] = append(r.ArchNameToCapabilities[gpu.ArchName], gpu.ComputeCapability)
	}

	return r, nil
}

// DefaultCapabilities returns the compute capabilities that a build should
// target when the caller does not request any. A build targets either the
// discrete GPUs or, with withJetson set, the Jetson parts. Parts past their
// default cutoff are excluded even though they remain individually
// requestable.
func (r *Resolved) DefaultCapabilities(withJetson bool) []string {
	var caps []string
	for _, gpu := range r.SupportedGpus {
		if gpu.IsJetson != withJetson {
			continue
		}
		if gpu.DontDefaultAfter != "" {
			// Malformed cutoffs are caught by the table tests.
			cutoff, err := parseVersion(gpu.DontDefaultAfter)
			if err != nil || cutoff.LessThan(r.version) {
				continue
			}
		}
		caps = append(caps, gpu.ComputeCapability)
	}
	return caps
}

// IsJetsonBuild reports whether the requested capabilities describe a Jetson
// build. All requested capabilities must agree: a list mixing Jetson and
// non-Jetson parts returns ErrMixedJetson.
func (r *Resolved) IsJetsonBuild(capabilities []string) (bool, error) {
	if len(capabilities) == 0 {
		return false, fmt.Errorf("cannot determine build type: %w", ErrEmptyCapabilities)
	}

	jetson := 0
	for _, capability := range capabilities {
		gpu, err := r.lookup(capability)
		if err != nil {
			return false, err
		}
		if gpu.IsJetson {
			jetson++
		}
	}

	switch jetson {
	case 0:
		return false, nil
	case len(capabilities):
		return true, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMixedJetson, capabilities)
	}
}

// lookup returns the supported table entry for a capability. The error
// message distinguishes a capability missing from the table entirely from
// one that is merely outside the current toolkit's version range; both are
// ErrUnknownCapability.
func (r *Resolved) lookup(capability string) (Gpu, error) {
	if _, ok := r.CapabilityToName[capability]; ok {
		for _, gpu := range r.SupportedGpus {
			if gpu.ComputeCapability == capability {
				return gpu, nil
			}
		}
	}
	for _, gpu := range r.table {
		if gpu.ComputeCapability == capability {
			supportedRange := "CUDA " + gpu.MinCudaVersion + " and newer"
			if gpu.MaxCudaVersion != "" {
				supportedRange = "CUDA " + gpu.MinCudaVersion + " through " + gpu.MaxCudaVersion
			}
			return Gpu{}, fmt.Errorf("%w: %q is not supported by CUDA %s (requires %s)",
				ErrUnknownCapability, capability, r.CudaVersion, supportedRange)
		}
	}
	return Gpu{}, fmt.Errorf("%w: %q is not in the GPU table (CUDA version %s)",
		ErrUnknownCapability, capability, r.CudaVersion)
}
