package main

import "github.com/mvp-joe/context7-agent/internal/cli"

func main() {
	cli.Execute()
}
