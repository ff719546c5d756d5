package main

import (
	"log"

	"github.com/MrSnakeDoc/newtab/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ newtab failed to start: %v", err)
	}
}
