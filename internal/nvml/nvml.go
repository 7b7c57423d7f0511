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

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Interface : Type to represent interactions with NVML
type Interface interface {
	Init() error
	Shutdown() error
	GetDeviceCount() (uint, error)
	NewDevice(id uint) (device Device, err error)
}

// Device : Type to represent interactions with an nvml.Device
type Device interface {
	GetCudaComputeCapability() (int, int, error)
	GetName() (string, error)
}

// Lib : Implementation of Interface using the NVML lib
type Lib struct{}

// LibDevice : Implementation of Device using a device from the NVML lib
type LibDevice struct {
	device *nvml.Device
}

var _ Interface = (*Lib)(nil)

// Init : Init NVML lib
func (nvmlLib Lib) Init() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure calling nvml.Init: %v", r)
		}
	}()

	ret := nvml.Init()
	if ret != nvml.SUCCESS {
		return errorString(ret)
	}

	return nil
}

// Shutdown : Shutdown NVML lib
func (nvmlLib Lib) Shutdown() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure calling nvml.Shutdown: %v", r)
		}
	}()

	ret := nvml.Shutdown()
	if ret != nvml.SUCCESS {
		return errorString(ret)
	}

	return
}

// GetDeviceCount : Return the number of GPUs using NVML
func (nvmlLib Lib) GetDeviceCount() (uint, error) {
	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return 0, errorString(ret)
	}
	return uint(count), nil
}

// NewDevice : Get a handle for the GPU with the given index using NVML
func (nvmlLib Lib) NewDevice(id uint) (Device, error) {
	h, ret := nvml.DeviceGetHandleByIndex(int(id))
	if ret != nvml.SUCCESS {
		return nil, errorString(ret)
	}

	d := LibDevice{
		device: &h,
	}
	return d, nil
}

// GetCudaComputeCapability returns the CUDA Compute Capability major and
// minor versions of the device
func (d LibDevice) GetCudaComputeCapability() (int, int, error) {
	major, minor, ret := d.device.GetCudaComputeCapability()
	if ret != nvml.SUCCESS {
		return 0, 0, errorString(ret)
	}

	return major, minor, nil
}

// GetName returns the device name / model.
func (d LibDevice) GetName() (string, error) {
	name, ret := d.device.GetName()
	if ret != nvml.SUCCESS {
		return "", errorString(ret)
	}

	return name, nil
}

func errorString(r nvml.Return) error {
	if r == nvml.SUCCESS {
		return nil
	}
	return fmt.Errorf("NVML error: %v", nvml.ErrorString(r))
}
