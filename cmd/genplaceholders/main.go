package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/deepdelve/internal/placeholders"
)

func main() {
	out := flag.String("out", "assets/placeholders", "Directory to write the PNG sheets into")
	flag.Parse()

	fmt.Println("Deepdelve Placeholder Texture Generator")
	fmt.Println("=======================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! These are the same textures the game synthesizes at startup.")
}
