package main

import "github.com/MayaSCA/focus-city-scape/cmd/sc/root"

func main() {
	root.Execute()
}
