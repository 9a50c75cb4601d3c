/*
Copyright © 2025 shutteritch
*/
package main

import "github.com/shutteritch/TaskManager/cmd"

func main() {
	cmd.Execute()
}
