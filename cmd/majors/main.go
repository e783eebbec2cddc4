package main

import "github.com/vfg2006/college-majors-api/internal/cli"

func main() {
	cli.Execute()
}
