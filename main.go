package main

import "github.com/Pradnyasurya/Expense-Tracker-Frontend/cmd"

func main() {
	cmd.Execute()
}
