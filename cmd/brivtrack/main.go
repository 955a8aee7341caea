package main

import "github.com/Extraversi0n/road-to-brivJ/cmd/brivtrack/root"

func main() {
	root.Execute()
}
