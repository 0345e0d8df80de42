package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/itchan-dev/forum-api/shared/config"
	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/jwt"
)

// issue-token prints an access token signed with the configured jwt key.
// Users are managed outside this service, so this is how local clients get one.
func main() {
	var configFolder, userId, username string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&userId, "user_id", "", "id of the user the token is issued for")
	flag.StringVar(&username, "username", "", "username put into the token")
	flag.Parse()

	if userId == "" {
		log.Fatal("-user_id is required")
	}

	cfg := config.MustLoad(configFolder)
	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.User{Id: userId, Username: username})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Printf("  Access token for %s (valid for %s)\n", userId, cfg.JwtTTL())
	fmt.Println("=================================================")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Use it as:")
	fmt.Printf("Authorization: Bearer %s\n", token)
}
