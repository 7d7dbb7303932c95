package main

import "github.com/inovacc/repobook/cmd"

func main() {
	cmd.Execute()
}
