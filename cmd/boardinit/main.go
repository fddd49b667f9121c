// cmd/boardinit/main.go
package main

import "boardinit-go/cmd/boardinit/cmd"

func main() {
	cmd.Execute()
}
