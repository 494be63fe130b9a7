// CLI tool to write the tracker profile straight into the key-value store.
// Prompts for each field; an empty answer keeps the default shown in brackets.
// Usage: go run ./cmd/set-profile (from the module root)
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// profileKey must match the server's storage key.
const profileKey = "healthify.profile"

// profile mirrors the server's stored profile document.
type profile struct {
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	HeightCM           float64 `json:"height_cm"`
	WeightKG           float64 `json:"weight_kg"`
	ActivityLevel      string  `json:"activity_level"`
	Goal               string  `json:"goal"`
	DailyProteinTarget float64 `json:"daily_protein_target"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	p := promptProfile(bufio.NewReader(os.Stdin))

	raw, err := json.Marshal(p)
	if err != nil {
		log.Fatalf("Error encoding profile: %v", err)
	}

	_, err = conn.Exec(ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2::jsonb)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		profileKey, string(raw))
	if err != nil {
		log.Fatalf("Error saving profile: %v", err)
	}

	fmt.Printf("\nProfile saved for %s.\n", p.Name)
}

// promptProfile asks for every field, starting from the server defaults.
func promptProfile(r *bufio.Reader) profile {
	p := profile{
		Name: "Guest", Age: 28, Gender: "other", HeightCM: 170, WeightKG: 70,
		ActivityLevel: "moderate", Goal: "maintain", DailyProteinTarget: 120,
	}
	p.Name = ask(r, "Name", p.Name)
	p.Age = askInt(r, "Age", p.Age)
	p.Gender = ask(r, "Gender (male/female/other)", p.Gender)
	p.HeightCM = askFloat(r, "Height (cm)", p.HeightCM)
	p.WeightKG = askFloat(r, "Weight (kg)", p.WeightKG)
	p.ActivityLevel = ask(r, "Activity (sedentary/light/moderate/active/very-active)", p.ActivityLevel)
	p.Goal = ask(r, "Goal (lose/maintain/gain)", p.Goal)
	p.DailyProteinTarget = askFloat(r, "Protein target (g)", p.DailyProteinTarget)
	return p
}

func ask(r *bufio.Reader, label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	line, _ := r.ReadString('\n')
	if line = strings.TrimSpace(line); line != "" {
		return line
	}
	return def
}

func askInt(r *bufio.Reader, label string, def int) int {
	s := ask(r, label, strconv.Itoa(def))
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Printf("  not a number, keeping %d\n", def)
		return def
	}
	return n
}

func askFloat(r *bufio.Reader, label string, def float64) float64 {
	s := ask(r, label, strconv.FormatFloat(def, 'f', -1, 64))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Printf("  not a number, keeping %g\n", def)
		return def
	}
	return f
}
