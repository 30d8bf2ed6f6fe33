package main

import "github.com/s22625/utilview/internal/cli"

func main() {
	cli.Execute()
}
