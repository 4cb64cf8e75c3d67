// SPDX-License-Identifier: MIT

// Command intmat exposes the intmatrix library on the command line.
//
// Matrices are given as literals: rows separated by ";", entries by ",".
//
//	intmat det "3,5;2,4"               # 2
//	intmat mul "1,2;3,4" "5,6;7,8"     # 19 22 / 43 50
//	intmat minor "1,2,3;4,5,6;7,8,9" 1 2
//
// Configuration is read from flags, then INTMAT_* environment variables,
// then an optional YAML file given with --config.
package main

import "os"

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
