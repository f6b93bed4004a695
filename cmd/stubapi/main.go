// Command stubapi runs the in-memory development backend for the league API.
package main

import (
	"log"
	"net/http"
	"os"

	"leaguedesk/internal/stubapi"
)

func main() {
	s := stubapi.NewServer()
	s.Seed()

	addr := ":4000"
	if v := os.Getenv("STUBAPI_ADDR"); v != "" {
		addr = v
	}
	log.Printf("stubapi listening on %s (admin: %s / %s)", addr, stubapi.SeedAdminEmail, stubapi.SeedAdminPassword)
	if err := http.ListenAndServe(addr, s.Routes()); err != nil {
		log.Fatalf("stubapi failed: %v", err)
	}
}
