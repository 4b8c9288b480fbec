// Command vmaptool exercises the vmap region cache outside of tests: cat
// streams a file's contents through a Builder-configured vmap.File, and
// stat reports the resulting region table occupancy after a scripted walk.
package main

import "github.com/grailbio/vmap/cmd/vmaptool/cmd"

func main() {
	cmd.Run()
}
