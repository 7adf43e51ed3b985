package main

import (
	"go-encash/internal/app"
	"go-encash/internal/employee"
	"go-encash/internal/encashment"
	"go-encash/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

const outboxSchema = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id varchar(64),
	aggregate_id uuid NOT NULL,
	event_type varchar(100) NOT NULL,
	topic varchar(200) NOT NULL,
	payload jsonb NOT NULL,
	status varchar(20) NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	error_message varchar(500),
	next_retry_at timestamptz,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// Seed sekali jalan: migrasi schema + akun demo untuk development
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := app.LoadConfig()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&employee.Employee{}, &encashment.Encashment{}); err != nil {
		logger.Fatal("migrate schema failed", zap.Error(err))
	}
	if err := gormDB.Exec(outboxSchema).Error; err != nil {
		logger.Fatal("migrate outbox schema failed", zap.Error(err))
	}

	accounts := []struct {
		name     string
		email    string
		password string
		role     string
		balance  int
	}{
		{"John Doe", "john@example.com", "password123", employee.RoleEmployee, 20},
		{"Admin User", "admin@example.com", "admin123", employee.RoleAdmin, 0},
	}

	for _, a := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("hash password failed", zap.Error(err))
		}

		e := employee.Employee{
			ID:           uuid.New(),
			Name:         a.name,
			Email:        a.email,
			Password:     string(hashed),
			Role:         a.role,
			LeaveBalance: a.balance,
			Shares:       0,
		}

		// Email unik; seed yang dijalankan ulang tidak menimpa data yang ada
		err = gormDB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&e).Error
		if err != nil {
			logger.Fatal("seed employee failed", zap.String("email", a.email), zap.Error(err))
		}

		logger.Info("seeded employee", zap.String("email", a.email), zap.String("role", a.role))
	}

	logger.Info("database seeded")
}
