// dialcheck runs the next-to-call selection over a JSON file of lead records
// and prints the result, without starting the HTTP server. Useful for
// spot-checking a lead export before a calling shift.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"leadcall_backend/internal/leads/service"
	"leadcall_backend/internal/leads/transport"
	"leadcall_backend/platform/logger"
)

func main() {
	var leadsPath string
	flag.StringVar(&leadsPath, "leads", "", "path to a JSON array of lead records")
	flag.Parse()

	log := logger.New(os.Getenv("APP_ENV"))

	if leadsPath == "" {
		log.Error("missing required -leads flag")
		os.Exit(2)
	}

	data, err := os.ReadFile(leadsPath)
	if err != nil {
		log.Error("failed to read leads file", "error", err)
		os.Exit(1)
	}

	var leadsIn []transport.LeadRequest
	if err := json.Unmarshal(data, &leadsIn); err != nil {
		log.Error("failed to parse leads file", "error", err)
		os.Exit(1)
	}

	svc := service.New(log)
	result := svc.NextToCall(context.Background(), leadsIn)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
