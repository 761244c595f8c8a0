package main

import (
	_ "tender_finder/docs"
	"tender_finder/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tender Finder API
// @version         1.0
// @description     Read-only tender records ranked by distance to a reference point.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
