// Copyright 2023 The Quadpi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

/*
Estimates π by parallel Simpson's-rule integration of 4/(1+x²) on [0,1]
using arbitrary-precision decimal arithmetic.

For usage details, run quadpi with the command line flag -h or --help.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/quadpi/quadpi/clog"
	"github.com/quadpi/quadpi/quad"
)

func main() {
	var help bool
	var log bool
	var native bool

	flag.Usage = usage
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&log, "l", false, "Show logging output (for debugging)")
	flag.BoolVar(&native, "n", false, "Use native float64 arithmetic instead of bignums")
	flag.Parse()

	if flag.Arg(3) != "" || help {
		usage()
		if help {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if log {
		clog.Enable()
	}

	var cfg quad.Config
	// Missing and non-positive positionals fall back to the defaults;
	// anything non-numeric is a usage error.
	cfg.Iterations = positional64(0)
	cfg.Workers = int(positional64(1))
	cfg.Digits = int(positional64(2))

	run := quad.Run
	if native {
		run = quad.RunNative
	}
	res, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quadpi: %v\n", err)
		os.Exit(1)
	}
	res.Report(os.Stdout)
}

// positional64 parses positional argument i, returning 0 (take the
// default) when it is absent. Malformed values are usage errors.
func positional64(i int) int64 {
	s := flag.Arg(i)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quadpi: argument %d: %q is not an integer\n", i+1, s)
		usage()
		os.Exit(2)
	}
	return v
}

func usage() {
	fmt.Printf(`usage: quadpi [-h|--help] [-l] [-n] [iterations [workers [digits]]]

Estimates pi by Simpson's-rule integration split across parallel
workers. Non-positive or missing arguments use the defaults:
%d iterations, %d workers, %d significant digits. Since error
accumulates in the last places, ask for roughly twice the digits you
want to rely on.

Flags:
`, quad.DefaultIterations, quad.DefaultWorkers, quad.DefaultDigits)
	flag.PrintDefaults()
}
