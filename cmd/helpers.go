package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"condo-cli/storage"
)

func parseDateInput(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	now := time.Now()
	switch strings.ToLower(input) {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}
	parsed, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}

func parseClock(input string) (int, error) {
	parsed, err := time.Parse("15:04", input)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", input)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// requireCredentials gates authenticated commands: loads the stored
// session, checks token expiry, and arms the shared client.
func requireCredentials() (*storage.Credentials, error) {
	creds, err := storage.LoadCredentials()
	if err != nil {
		return nil, err
	}
	if creds == nil || creds.AccessToken == "" {
		return nil, fmt.Errorf("not logged in. Run 'condo auth login' first")
	}
	if creds.AccessTokenExpired(time.Now()) {
		return nil, fmt.Errorf("session expired. Run 'condo auth login' to re-authenticate")
	}
	client.AccessToken = creds.AccessToken
	return creds, nil
}
