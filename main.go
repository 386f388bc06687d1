/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/vidcode-api/cmd"

// @title           Video Coding API
// @version         1.0.0
// @description     Backend for collaborative video content coding against a project codebook
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/vidcode-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
