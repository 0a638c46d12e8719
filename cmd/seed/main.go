package main

import (
	"healthtracker/internal/app/ds"
	"healthtracker/internal/app/dsn"
	"healthtracker/internal/app/repository"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	repo, err := repository.New(dsn.Dialector())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer repo.Close()

	if err := repo.AutoMigrate(); err != nil {
		log.Fatalf("cant migrate db: %v", err)
	}

	// Удаляем все существующие лекарства
	if err := repo.DeleteAllMedications(); err != nil {
		log.Fatalf("failed to clear medications: %v", err)
	}

	medications := []ds.Medication{
		{
			Name:       "Ibuprofen",
			Dosage:     "200mg",
			Frequency:  "Every 6 hours as needed",
			TimeToTake: "08:00",
			Notes:      "Take with food",
		},
		{
			Name:       "Loratadine",
			Dosage:     "10mg",
			Frequency:  "Once daily",
			TimeToTake: "21:00",
			Notes:      "Seasonal allergies",
		},
		{
			Name:       "Vitamin D3",
			Dosage:     "1000 IU",
			Frequency:  "Once daily",
			TimeToTake: "09:00",
		},
		{
			Name:       "Omeprazole",
			Dosage:     "20mg",
			Frequency:  "Once daily",
			TimeToTake: "07:30",
			Notes:      "30 minutes before breakfast",
		},
	}

	for i := range medications {
		if err := repo.CreateMedication(&medications[i]); err != nil {
			log.Errorf("Ошибка при создании лекарства %s: %v", medications[i].Name, err)
			continue
		}
		log.Infof("Создано лекарство: %s (ID: %s)", medications[i].Name, medications[i].ID)
	}

	log.Info("Seed completed successfully!")
}
