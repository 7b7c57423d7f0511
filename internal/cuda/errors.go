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

import "errors"

var (
	// ErrInvalidVersion indicates a version string that does not parse as a
	// dotted toolkit version.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrEmptyCapabilities indicates that an empty capability list was
	// requested where at least one capability is required.
	ErrEmptyCapabilities = errors.New("no compute capabilities requested")

	// ErrUnknownCapability indicates a requested compute capability with no
	// entry in the supported lookup. The capability is either not in the
	// hardware table at all, or outside the current toolkit's version range.
	ErrUnknownCapability = errors.New("unknown compute capability")

	// ErrDuplicateCapability indicates that the hardware table violates its
	// uniqueness invariant. This is a defect in the table, not in the request.
	ErrDuplicateCapability = errors.New("duplicate compute capability in GPU table")

	// ErrMixedJetson indicates a capability list mixing Jetson and non-Jetson
	// parts. A build targets one or the other, never both.
	ErrMixedJetson = errors.New("mixed Jetson and non-Jetson compute capabilities")
)
