package main

import "github.com/paperdesk/paperdesk/internal/cli"

func main() {
	cli.Execute()
}
