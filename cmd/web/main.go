package main

import "aplyease_backend/internal/app"

func main() {
	app.Run()
}
