// Command contractfind searches XML documents for contract codes.
package main

import "github.com/mouse-blink/contractfind/cmd"

func main() {
	cmd.Execute()
}
