package main

import (
	"fmt"
	"log"

	"huddle/pkg/ui"
)

func main() {
	const out = "assets/icons/huddle.png"
	err := ui.GenerateIcon(out)
	if err != nil {
		log.Fatal("Failed to generate icon:", err)
	}
	fmt.Println("Icon generated successfully:", out)
}
