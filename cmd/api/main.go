package main

import (
	"portfolio_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact inquiries, receipt requests, live chat and the admin console API of the portfolio site.

// @contact.name   Portfolio Support

// @host localhost:5000

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
