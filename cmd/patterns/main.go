// Command patterns runs the Factory and Mixin demonstrations.
package main

import "github.com/sghaida/docpatterns/internal/cli"

func main() {
	cli.Execute()
}
