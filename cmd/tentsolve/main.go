// Command tentsolve is the Tents puzzle solver's command-line front end:
// solve a puzzle outright, step through it one move at a time, or inspect
// the solved-puzzle cache.
package main

import "github.com/ashrey-kulkarni/tentsolve/cmd/tentsolve/cmd"

func main() {
	cmd.Execute()
}
