package main

import (
	"os"

	"github.com/clinicdesk/clinicdesk/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
