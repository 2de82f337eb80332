// Command m61 reduces integers modulo 2^61-1 and benchmarks the reduction
// routines of package m61.
//
//	m61 reduce 0x1fffffffffffffff -- -42
//	m61 pow 3 1000000
//	m61 inv 12345
//	m61 bench --digits 4194304 --workers 1,2,4,8 --out bench.html
//
// Every flag can also be set through an M61_ environment variable, e.g.
// M61_LOG_LEVEL=debug or M61_WORKERS=1,4.
package main

import "os"

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
