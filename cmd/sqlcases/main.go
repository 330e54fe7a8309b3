// Package main provides the sqlcases CLI entry point.
package main

import "github.com/leapstack-labs/sqlcases/internal/cli"

func main() {
	cli.Execute()
}
