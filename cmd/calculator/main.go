// Command calculator adds or subtracts two unsigned 32-bit integers.
//
//	calculator 2 3 add                 2 + 3 = 5
//	calculator 3 5 sub                 3 - 5 = 4294967294
//	calculator --backend wasm 2 3 add  same result, computed by linked wasm components
//	calculator -i                      interactive mode
package main

import (
	"context"
	"io"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
