// SPDX-License-Identifier: MIT

// Command strassen multiplies the two square matrices stored in a text file
// with one of the numbered strategies and reports the elapsed time.
//
//	strassen path/to/data type [print]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
