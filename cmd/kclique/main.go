package main

import "github.com/junjiewwang/kclique/cmd/kclique/cmd"

func main() {
	cmd.Execute()
}
