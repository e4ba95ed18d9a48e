package main

import (
	"github.com/petrel-team/petrel/cmd"
)

// Version is the current version of petrel
// It is set at build time by using -ldflags "-X main.version=x.x.x"
var version string

func main() {
	cmd.Execute(version)
}
