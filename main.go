package main

import (
	"github.com/openticketai/sitekit/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/openticketai/sitekit/extension/all"
)

func main() {
	cmd.Execute()
}
