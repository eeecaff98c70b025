package main

import (
	"github.com/kweiss/xwinctl/cmd"

	_ "github.com/kweiss/xwinctl/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
