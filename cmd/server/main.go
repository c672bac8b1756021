package main

import "soga/quote_backend/internal/app"

func main() {
	app.Run()
}
