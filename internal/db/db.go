package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/esthetic-scheduler/internal/config"
	"github.com/BruksfildServices01/esthetic-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Professional{},
		&models.Service{},
		&models.CalendarConfig{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial: o banco é a última linha de defesa contra dois
	// agendamentos ativos no mesmo início de slot do mesmo profissional.
	// Cancelados e no-show ficam de fora para permitir reocupar o horário.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uidx_agenda_slot
        ON appointments (professional_id, date, start_time)
        WHERE status IN ('scheduled', 'confirmed', 'completed')
    `)

	return db
}
