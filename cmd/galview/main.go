// Command galview renders and plots a demonstration circuit board with the
// gal drawing context and the board plotter.
package main

import "github.com/gogpu/gal/cmd/galview/cmd"

func main() {
	cmd.Execute()
}
