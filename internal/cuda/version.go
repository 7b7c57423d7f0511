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

	"github.com/Masterminds/semver/v3"
)

// parseVersion parses a dotted toolkit version such as "11.8" or "12.2.1".
// Components are compared numerically, so "10.0" sorts after "9.0".
func parseVersion(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	return v, nil
}

// isSupported reports whether the GPU can be targeted by the given toolkit
// version. Both bounds are inclusive: the upper bound holds as long as
// MaxCudaVersion is not older than the toolkit. An empty MaxCudaVersion
// means the GPU is supported by every toolkit at or above MinCudaVersion.
func (g Gpu) isSupported(toolkit *semver.Version) (bool, error) {
	min, err := parseVersion(g.MinCudaVersion)
	if err != nil {
		return false, fmt.Errorf("GPU table entry %q has malformed MinCudaVersion: %v", g.ComputeCapability, err)
	}
	if toolkit.LessThan(min) {
		return false, nil
	}
	if g.MaxCudaVersion == "" {
		return true, nil
	}
	max, err := parseVersion(g.MaxCudaVersion)
	if err != nil {
		return false, fmt.Errorf("GPU table entry %q has malformed MaxCudaVersion: %v", g.ComputeCapability, err)
	}
	return !max.LessThan(toolkit), nil
}
