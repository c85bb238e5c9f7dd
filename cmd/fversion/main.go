package main

import "github.com/fuchsia-build/fversion/cmd/fversion/internal"

func main() {
	internal.Execute()
}
