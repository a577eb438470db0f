/*
Launchpad — local hub CLI for the Triad369 app family.
*/
package main

import (
	"github.com/triad369/launchpad/cmd"
)

func main() {
	cmd.Execute()
}
