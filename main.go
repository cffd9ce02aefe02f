package main

import "github.com/kordlan/harmonia_backend/cmd"

func main() {
	cmd.Execute()
}
