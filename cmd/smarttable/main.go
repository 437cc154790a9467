// Command smarttable queries JSON, JSONL and SQLite data through the table
// engine.
package main

import "github.com/mesh-intelligence/smarttable/internal/cli"

func main() {
	cli.Execute()
}
