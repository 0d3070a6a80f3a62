package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mroshb/fitness_tracker/internal/repositories"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Exports business insights and both weekly leaderboards to an xlsx report
// for operators. Usage: go run scripts/export_report/main.go [output.xlsx]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	output := "fitness_report.xlsx"
	if len(os.Args) > 1 {
		output = os.Args[1]
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	statsRepo := repositories.NewStatsRepository(db)

	report, err := statsRepo.GetBusinessInsights()
	if err != nil {
		log.Fatal("failed to load insights:", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Insights sheet
	sheet := "Insights"
	f.SetSheetName(f.GetSheetName(0), sheet)
	f.SetCellValue(sheet, "A1", "Metric")
	f.SetCellValue(sheet, "B1", "Value")
	f.SetCellValue(sheet, "A2", "Total Users")
	f.SetCellValue(sheet, "B2", report.TotalUsers)
	f.SetCellValue(sheet, "A3", "Total Workouts")
	f.SetCellValue(sheet, "B3", report.TotalWorkouts)

	f.SetCellValue(sheet, "A4", "Average Workout Duration (mins)")
	if report.AvgWorkoutDuration != nil {
		f.SetCellValue(sheet, "B4", *report.AvgWorkoutDuration)
	} else {
		f.SetCellValue(sheet, "B4", "N/A")
	}

	f.SetCellValue(sheet, "A5", "Max Reps in a Single Exercise")
	if report.MaxReps != nil {
		f.SetCellValue(sheet, "B5", *report.MaxReps)
	} else {
		f.SetCellValue(sheet, "B5", "N/A")
	}

	f.SetCellValue(sheet, "A6", "Min Weight Lifted (kg)")
	if report.MinWeightLifted != nil {
		f.SetCellValue(sheet, "B6", *report.MinWeightLifted)
	} else {
		f.SetCellValue(sheet, "B6", "N/A")
	}

	// Leaderboard sheets, trailing 7 days
	since := time.Now().Add(-7 * 24 * time.Hour)
	for _, metric := range []string{repositories.MetricTotalMinutes, repositories.MetricTotalWorkouts} {
		entries, err := statsRepo.GetLeaderboard(metric, since)
		if err != nil {
			log.Fatalf("failed to load leaderboard (%s): %v", metric, err)
		}

		name := "Leaderboard " + metric
		if _, err := f.NewSheet(name); err != nil {
			log.Fatal("failed to create sheet:", err)
		}
		f.SetCellValue(name, "A1", "Rank")
		f.SetCellValue(name, "B1", "Name")
		f.SetCellValue(name, "C1", "Value")

		for i, e := range entries {
			row := i + 2
			f.SetCellValue(name, fmt.Sprintf("A%d", row), i+1)
			f.SetCellValue(name, fmt.Sprintf("B%d", row), e.Name)
			f.SetCellValue(name, fmt.Sprintf("C%d", row), e.Value)
		}
	}

	if err := f.SaveAs(output); err != nil {
		log.Fatal("failed to save report:", err)
	}

	fmt.Printf("Report written to %s\n", output)
}
