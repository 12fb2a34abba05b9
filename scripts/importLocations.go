package main

import (
	"clubhub/config"
	"clubhub/database"
	"clubhub/models"
	"encoding/csv"
	"log"
	"os"
	"strings"
)

// Imports the location catalog from Locations.csv (columns: state, district,
// institution). Rows upsert by name, so re-running the import is safe.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("Locations.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%500 == 0 && i > 0 {
			log.Printf("Processing row %d...", i+1)
		}

		stateName := getField(row, headerIndex, "state")
		districtName := getField(row, headerIndex, "district")
		institutionName := getField(row, headerIndex, "institution")

		if stateName == "" || districtName == "" {
			skipped++
			continue
		}

		var state models.State
		if err := database.Database.Db.Where("name = ?", stateName).First(&state).Error; err != nil {
			state = models.State{Name: stateName}
			if err := database.Database.Db.Create(&state).Error; err != nil {
				log.Printf("Error inserting state %s: %v", stateName, err)
				continue
			}
		}

		var district models.District
		if err := database.Database.Db.Where("state_id = ? AND name = ?", state.ID, districtName).First(&district).Error; err != nil {
			district = models.District{StateID: state.ID, Name: districtName}
			if err := database.Database.Db.Create(&district).Error; err != nil {
				log.Printf("Error inserting district %s: %v", districtName, err)
				continue
			}
		}

		if institutionName == "" {
			inserted++
			continue
		}

		var institution models.Institution
		if err := database.Database.Db.Where("district_id = ? AND name = ?", district.ID, institutionName).First(&institution).Error; err != nil {
			institution = models.Institution{
				DistrictID: district.ID,
				Name:       institutionName,
				Status:     models.StatusApproved,
			}
			if err := database.Database.Db.Create(&institution).Error; err != nil {
				log.Printf("Error inserting institution %s: %v", institutionName, err)
				continue
			}
		}
		inserted++
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Imported: %d", inserted)
	log.Printf("Skipped: %d", skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
