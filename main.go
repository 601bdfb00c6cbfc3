// Package main is the entry point for the darray application.
package main

import (
	"github.com/darray-cli/darray/cmd"
	"github.com/darray-cli/darray/config"
	"github.com/darray-cli/darray/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
