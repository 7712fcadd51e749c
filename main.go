package main

import (
	"os"

	"github.com/GoRetail-Admin/GoRetail-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
