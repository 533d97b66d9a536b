package main

import "github.com/oshokin/pass-bundler/cmd/pass-bundler/cmd"

func main() {
	cmd.Execute()
}
