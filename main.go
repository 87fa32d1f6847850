package main

import "tasktrack/internal/app"

// @title           tasktrack API
// @version         1.0
// @description     Task tracking service with paginated listing and update notifications.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
