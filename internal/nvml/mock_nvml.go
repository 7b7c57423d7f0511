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

package nvml

import "fmt"

// Mock : Implementation of Interface using mocked calls
type Mock struct {
	Devices     []MockDevice
	ErrorOnInit bool
}

// MockDevice : Implementation of Device using mocked calls
type MockDevice struct {
	Model        string
	ComputeMajor int
	ComputeMinor int
}

var _ Interface = (*Mock)(nil)
var _ Device = (*MockDevice)(nil)

// Init : Init the mock
func (nvmlMock Mock) Init() error {
	if nvmlMock.ErrorOnInit {
		return fmt.Errorf("nvmlMock error on init")
	}
	return nil
}

// Shutdown : Shutdown the mock
func (nvmlMock Mock) Shutdown() error {
	return nil
}

// GetDeviceCount : Return a fake number of devices
func (nvmlMock Mock) GetDeviceCount() (uint, error) {
	return uint(len(nvmlMock.Devices)), nil
}

// NewDevice : Get information about a fake GPU
func (nvmlMock Mock) NewDevice(id uint) (Device, error) {
	if int(id) < len(nvmlMock.Devices) {
		return nvmlMock.Devices[id], nil
	}
	return nil, fmt.Errorf("invalid index: %d", id)
}

// GetCudaComputeCapability returns the mocked CUDA Compute capability
func (d MockDevice) GetCudaComputeCapability() (int, int, error) {
	return d.ComputeMajor, d.ComputeMinor, nil
}

// GetName returns the mocked device name
func (d MockDevice) GetName() (string, error) {
	return d.Model, nil
}
