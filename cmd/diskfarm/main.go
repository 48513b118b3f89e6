// filepath: cmd/diskfarm/main.go
package main

import "diskfarm/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
