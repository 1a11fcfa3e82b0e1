package main

import "timetable-server/cmd"

func main() {
	cmd.Execute()
}
