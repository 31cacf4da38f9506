// Command corebpe is a thin CLI over the tokenizer package: encode, decode,
// and count text against one of the bundled public encodings.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
