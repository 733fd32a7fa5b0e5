// ./main.go
package main

import (
	"context"
	"os"

	"github.com/xkilldash9x/gridspec/cmd"
)

// main lets `go install github.com/xkilldash9x/gridspec` produce a working binary. The
// signal-aware entry point lives in cmd/gridspec.
func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
