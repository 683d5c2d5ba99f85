package main

import "github.com/SaiAmirthesh/Looped-sub000/cmd/looped/root"

func main() {
	root.Execute()
}
