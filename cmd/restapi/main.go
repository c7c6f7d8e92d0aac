package main

import "github.com/go-arrower/restapi/cmd"

func main() {
	cmd.Execute()
}
