package main

import "github.com/pfrederiksen/vnl-stats/internal/cli"

func main() {
	cli.Execute()
}
