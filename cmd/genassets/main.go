package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/tilewalk/placeholders"
)

func main() {
	out := flag.String("out", "assets", "directory to write the PNG files into")
	flag.Parse()

	written, err := placeholders.GenerateAndSave(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genassets: %v\n", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Printf("wrote %s\n", path)
	}
}
