package main

import (
	"fmt"
	"log"

	"github.com/Adamits/maxwell/pkg/actions"
	"github.com/Adamits/maxwell/pkg/align"
)

func main() {
	source := "intention"
	target := "execution"

	script, err := align.Align(source, target)
	if err != nil {
		log.Fatalf("Error aligning %q -> %q: %v", source, target, err)
	}

	fmt.Println("--- Generative script ---")
	fmt.Println(align.Visualize(script))
	for _, e := range script {
		fmt.Println(e)
	}

	fmt.Println("--- Conditional counterparts ---")
	for _, e := range actions.Counterparts(align.Frame(script)) {
		fmt.Println(e)
	}
}
