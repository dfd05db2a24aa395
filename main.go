package main

import "github.com/Alexandre-Santos-Lima/csvprof/cmd"

func main() {
	cmd.Execute()
}
