package main

import (
	"github.com/xpansion-tools/xpcheck/pkg/cli"
)

func main() {
	cli.Execute()
}
