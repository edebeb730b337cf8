package main

import "vincit.fi/image-triage/cmd"

func main() {
	cmd.Execute()
}
