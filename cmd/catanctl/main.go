// Command catanctl is a command line client for the Catan backend API.
package main

import (
	"github.com/hexforge/catan-go/internal/cli"
)

func main() {
	cli.Execute()
}
