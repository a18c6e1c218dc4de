package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"flightdesk/scheduler/internal/auth"
	"flightdesk/scheduler/internal/config"
	"flightdesk/scheduler/internal/constants"
)

// Issues a bearer token signed with the server's JWT secret.
//
//	go run ./cmd/token_gen -sub ops@example.com -role admin -ttl 24h
func main() {
	sub := flag.String("sub", "", "token subject (user id)")
	role := flag.String("role", string(constants.RoleUser), "user | admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" {
		flag.Usage()
		os.Exit(2)
	}

	r, err := constants.ParseRole(*role)
	if err != nil {
		log.Fatalf("role: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer).Issue(*sub, r, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
