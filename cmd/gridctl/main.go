// Command gridctl drives the gridkit automata from the terminal.
package main

func main() {
	execute()
}
