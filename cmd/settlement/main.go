// Command settlement inspects settlement details.
//
// Every decoder operation is available as a subcommand operating on hex
// encoded details and interaction:
//
//	settlement bump --details 0x... --now 1700000000
//	settlement allowed --details 0x... --interaction 0x... --resolver 0x...
//	settlement encode message.json
package main

import (
	"fmt"
	"os"
)

func main() {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
