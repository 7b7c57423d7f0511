// Copyright (c) 2023, NVIDIA CORPORATION. All rights reserved.

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"github.com/ozoromo/cuda-arch-discovery/internal/nvml"
)

const (
	// Bin : Name of the binary
	Bin = "cuda-arch-discovery"
)

// version : Version of the binary
// This will be set using ldflags at compile time
var version = ""

// Config holds the resolved command line options.
type Config struct {
	CudaVersion   string
	Capabilities  string
	ForwardCompat bool
	WithJetson    bool
	Detect        bool
	OutputFile    string
}

func main() {
	var config Config
	var configFile string

	c := cli.NewApp()
	c.Name = "CUDA Architecture Discovery"
	c.Usage = "resolve nvcc architecture flags for a CUDA toolkit version"
	c.Version = version
	c.Action = func(ctx *cli.Context) error {
		return start(ctx, &config)
	}

	c.Flags = []cli.Flag{
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:        "cuda-version",
				Usage:       "the CUDA toolkit version to resolve architecture flags for, e.g. \"12.2\"",
				Destination: &config.CudaVersion,
				EnvVars:     []string{"CUDA_VERSION"},
			},
		),
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:        "capabilities",
				Usage:       "comma-separated compute capabilities to target, newest last, e.g. \"7.5,8.6\";\n\tdefaults to all capabilities the toolkit supports",
				Destination: &config.Capabilities,
				EnvVars:     []string{"CUDA_CAPABILITIES"},
			},
		),
		altsrc.NewBoolFlag(
			&cli.BoolFlag{
				Name:        "forward-compat",
				Value:       true,
				Usage:       "emit a PTX target for the newest requested capability so binaries run on future hardware",
				Destination: &config.ForwardCompat,
				EnvVars:     []string{"CUDA_FORWARD_COMPAT"},
			},
		),
		altsrc.NewBoolFlag(
			&cli.BoolFlag{
				Name:        "with-jetson",
				Value:       false,
				Usage:       "build the default capability list from Jetson parts instead of discrete GPUs",
				Destination: &config.WithJetson,
				EnvVars:     []string{"CUDA_WITH_JETSON"},
			},
		),
		altsrc.NewBoolFlag(
			&cli.BoolFlag{
				Name:        "detect",
				Value:       false,
				Usage:       "target the compute capabilities of the GPUs present on this machine (requires NVML)",
				Destination: &config.Detect,
				EnvVars:     []string{"CUDA_DETECT"},
			},
		),
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:        "output-file",
				Aliases:     []string{"output", "o"},
				Usage:       "write the resolved variables to this file instead of stdout",
				Destination: &config.OutputFile,
				EnvVars:     []string{"CUDA_OUTPUT_FILE"},
			},
		),
		&cli.StringFlag{
			Name:        "config-file",
			Usage:       "the path to a config file as an alternative to command line options or environment variables",
			Destination: &configFile,
			EnvVars:     []string{"CUDA_CONFIG_FILE"},
		},
	}

	c.Before = altsrc.InitInputSourceWithContext(c.Flags, altsrc.NewYamlSourceFromFlagFunc("config-file"))

	err := c.Run(os.Args)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func start(ctx *cli.Context, config *Config) error {
	log.SetPrefix(Bin + ": ")

	if version != "" {
		log.Printf("Running %s in version %s", Bin, version)
	}

	return run(nvml.Lib{}, config, os.Stdout)
}
