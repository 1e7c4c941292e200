//go:build ignore

// Writes a color code to the system clipboard so the native backend can be
// checked by hand: go run ./cmd/cliptest blue-500
package main

import (
	"fmt"
	"os"

	"github.com/zhubert/swatch/internal/clipboard"
)

func main() {
	code := "rose-500"
	if len(os.Args) > 1 {
		code = os.Args[1]
	}

	fmt.Printf("Writing %q to the clipboard...\n", code)
	if err := clipboard.WriteText(code); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done. Paste somewhere to check.")
}
