// Command huffcode compresses and decompresses files with a Huffman code
// persisted as a text table.
package main

import (
	"github.com/chronos-tachyon/huffcode/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
