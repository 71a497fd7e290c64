package main

import "github.com/shouni/gutenberg-tweet-go/cmd"

func main() {
	cmd.Execute()
}
