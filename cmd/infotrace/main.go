// Command infotrace prints step-by-step traces of the infotrace engines.
//
// Usage:
//
//	infotrace huffman --symbols "A=0.4,B=0.3,C=0.2,D=0.1"
//	infotrace lz ABABCABABC --window 8
//	infotrace hamming decode 0110011 --flip 5
//	infotrace hamilton find --complete 4 --unique
//	infotrace compare --size 1000 -o yaml
//
// Configuration is read from infotrace.yaml (see --config) and INFOTRACE_*
// environment variables; command-line flags take precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
