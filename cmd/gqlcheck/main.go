// Command gqlcheck parses GraphQL documents and standalone value
// literals from the command line and reports syntax errors.
package main

import (
	"log"
	"os"

	"github.com/corvidae/graphql/cmd/gqlcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}
