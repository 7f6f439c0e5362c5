// Command dateconv converts dates between representations.
package main

import "github.com/viant/dateconv/internal/cli"

func main() {
	cli.Execute()
}
