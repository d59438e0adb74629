package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/emberfall/placeholders"
)

func main() {
	dir := flag.String("out", "assets", "directory to write placeholder sprites into")
	flag.Parse()

	fmt.Println("Emberfall Placeholder Graphics Generator")
	fmt.Println("========================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! Placeholder graphics written to %s.\n", *dir)
	fmt.Println("Run the game to see them in action.")
}
