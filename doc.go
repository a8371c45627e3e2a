/*
Package sortvis is a step-instrumented sorting engine: a family of
sorting algorithms that expose their internal progress as a lazy
sequence of observable steps, and a driver that advances them one step
at a time, manually or on a timer.

Every algorithm sorts in place and emits a step.State before each
comparison and after each write, annotating the indices involved
(compared pair, pivot, written element, and so on). A front-end maps
each snapshot to bars: value to height, index to position, annotation
to color.

# Usage

Create an Engine, then either drive it yourself or hand it to a Runner:

	package main

	import (
		"fmt"
		"log"

		"sortvis"
	)

	func main() {
		eng, err := sortvis.New(sortvis.WithAlgorithm("merge"))
		if err != nil {
			log.Fatal(err)
		}
		defer eng.Close()

		for {
			s, done := eng.Advance()
			fmt.Println(s.Result)
			if done {
				break
			}
		}
	}

Autoplay is available through Engine.SetPlaybackMode with the slow and
fast interval constants from the driver configuration; playback reverts
to stopped on its own when the run completes.
*/
package sortvis
