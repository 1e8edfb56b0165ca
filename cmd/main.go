// cmd/main.go
package main

import (
	"simple-bank-api/app"
)

// @title           Simple Bank API
// @version         1.0
// @description     Users, accounts and fee-bearing money transfers with transaction history.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
