// Command export-docs renders the OpenAPI document to a static file so it
// can be published without a running server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexforge/catan-go/docs"
)

func main() {
	out := flag.String("out", "openapi.json", "Output file path")
	flag.Parse()

	doc := docs.SwaggerInfo.ReadDoc()
	if doc == "" {
		fmt.Fprintln(os.Stderr, "export-docs: rendering the OpenAPI document failed")
		os.Exit(1)
	}

	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "export-docs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s\n", *out)
}
