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
	"fmt"
	"strings"
)

const (
	// realArchPrefix marks a concrete, binary-compatible hardware target.
	realArchPrefix = "sm_"
	// virtualArchPrefix marks a forward-portable PTX target.
	virtualArchPrefix = "compute_"
	// forwardSuffix marks the forward-compatibility entry in a capability
	// list.
	forwardSuffix = "+PTX"
)

// FormattedCapabilities is the full expansion of a requested capability list
// into nvcc architecture tokens and gencode flags. All lists preserve the
// order of the request; only ArchNames is de-duplicated, because several
// capabilities may belong to one architecture family.
type FormattedCapabilities struct {
	// Capabilities is the requested list, unchanged.
	Capabilities []string
	// ForwardCapability is the newest (last) requested capability marked as
	// a PTX entry, e.g. "8.6+PTX".
	ForwardCapability string
	// CapabilitiesAndForward is the requested list with ForwardCapability
	// appended when forward compatibility is enabled.
	CapabilitiesAndForward []string
	// ArchNames are the architecture family names touched by the request,
	// in first-occurrence order.
	ArchNames []string
	// RealArches are the binary targets, e.g. "sm_86".
	RealArches []string
	// VirtualArches are the PTX targets, e.g. "compute_86".
	VirtualArches []string
	// Arches is RealArches plus, when forward compatibility is enabled, the
	// virtual target of the newest requested capability.
	Arches []string
	// Gencode are the nvcc -gencode flags, one per requested capability,
	// plus the PTX flag for the newest capability when forward
	// compatibility is enabled.
	Gencode []string
}

// FormatCapabilities expands the requested compute capabilities into
// architecture tokens and gencode flags. The caller orders the request so
// that the newest capability is last; no re-sorting is applied. Every
// requested capability must be supported by the resolved toolkit version.
func (r *Resolved) FormatCapabilities(capabilities []string, forwardCompat bool) (*FormattedCapabilities, error) {
	if len(capabilities) == 0 {
		return nil, fmt.Errorf("cannot format capabilities: %w", ErrEmptyCapabilities)
	}

	newest := capabilities[len(capabilities)-1]

	f := &FormattedCapabilities{
		Capabilities:      capabilities,
		ForwardCapability: newest + forwardSuffix,
	}

	f.CapabilitiesAndForward = capabilities
	if forwardCompat {
		f.CapabilitiesAndForward = append(append([]string{}, capabilities...), f.ForwardCapability)
	}

	seen := make(map[string]bool)
	for _, capability := range capabilities {
		archName, ok := r.CapabilityToName[capability]
		if !ok {
			_, err := r.lookup(capability)
			return nil, err
		}
		if !seen[archName] {
			seen[archName] = true
			f.ArchNames = append(f.ArchNames, archName)
		}

		f.RealArches = append(f.RealArches, realArchPrefix+dropDot(capability))
		f.VirtualArches = append(f.VirtualArches, virtualArchPrefix+dropDot(capability))
		f.Gencode = append(f.Gencode, gencodeFlag(capability, realArchPrefix))
	}

	f.Arches = append([]string{}, f.RealArches...)
	if forwardCompat {
		f.Arches = append(f.Arches, virtualArchPrefix+dropDot(newest))
		f.Gencode = append(f.Gencode, gencodeFlag(newest, virtualArchPrefix))
	}

	return f, nil
}

// dropDot strips the separators from a compute capability, "8.6" -> "86".
func dropDot(capability string) string {
	return strings.ReplaceAll(capability, ".", "")
}

// gencodeFlag renders one nvcc -gencode flag binding the virtual compute
// target of a capability to a code target. A real code prefix produces a
// binary; the virtual prefix produces PTX for just-in-time translation on
// newer hardware.
func gencodeFlag(capability, codePrefix string) string {
	return fmt.Sprintf("-gencode=arch=%s%s,code=%s%s",
		virtualArchPrefix, dropDot(capability), codePrefix, dropDot(capability))
}
