// Command check-examples validates the JSON examples in the EMM specification.
// It exits with the number of examples that failed to parse.
package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/check-examples/internal/cli"
)

func main() {
	code, err := cli.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
