// Command stocksync runs the spreadsheet reconciliation service and its
// CLI client.
package main

import (
	"github.com/kjdelacruz/stocksync/cmd/stocksync/cmd"
)

func main() {
	cmd.Execute()
}
