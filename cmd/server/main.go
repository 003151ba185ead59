package main

import (
	"github.com/shashiranjanraj/goldenaura/app/bootstrap"

	// Register migrations so `./server migrate` sees them.
	_ "github.com/shashiranjanraj/goldenaura/database/migrations"
)

func main() {
	bootstrap.App().Run()
}
