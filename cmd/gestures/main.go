// Command gestures runs the gesture recognizer in a terminal or replays
// recorded input traces through it.
package main

func main() {
	Execute()
}
