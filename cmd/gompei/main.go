// Command gompei is a terminal client for the Gompei question-answering service.
package main

import (
	"github.com/joho/godotenv"

	"github.com/diogo/gompei/internal/commands"
)

func main() {
	// A .env in the working directory may set GOMPEI_ENDPOINT / GOMPEI_THEME
	_ = godotenv.Load()
	commands.Execute()
}
