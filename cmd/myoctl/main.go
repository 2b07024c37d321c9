// Command myoctl scores program templates and previews session schedules from the terminal.
package main

func main() {
	Execute()
}
