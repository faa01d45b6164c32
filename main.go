package main

import "github.com/sadopc/petpal/cmd"

func main() {
	cmd.Execute()
}
