// scripts/gcal-auth/main.go
//
// Run this once to authorize the Google Calendar export with an OAuth Desktop App
// credentials file. It writes token.json next to the service and then checks access by
// listing the next day of events on the target calendar.
//
// Usage:
//   go run ./scripts/gcal-auth --credentials google-credentials.json --calendar primary

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"schedule-calendar/pkg/gcalendar"
)

// tokenPath is where gcalendar.NewClientFromCredentialsJSON looks for the OAuth token.
const tokenPath = "token.json"

func main() {
	credsPath := pflag.StringP("credentials", "c", "google-credentials.json", "OAuth Desktop App credentials file")
	calendarID := pflag.String("calendar", "primary", "calendar to check access against")
	pflag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL in a browser and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := saveToken(tokenPath, tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}
	fmt.Printf("\n%s saved.\n", tokenPath)

	client, err := gcalendar.NewClientFromCredentialsJSON(ctx, data)
	if err != nil {
		log.Fatalf("Token saved but the calendar client could not be created: %v", err)
	}

	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: *calendarID,
		TimeMin:    now,
		TimeMax:    now.Add(24 * time.Hour),
		MaxResults: 10,
	})
	if err != nil {
		log.Fatalf("Token saved but calendar %q is not readable: %v", *calendarID, err)
	}
	fmt.Printf("Calendar %q is reachable (%d events in the next 24h).\n", *calendarID, len(events))
	fmt.Println("Set google_calendar.credentials_path and restart the service to enable the export.")
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
