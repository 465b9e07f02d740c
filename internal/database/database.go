package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lockedin/lockedin-api/internal/config"
	"github.com/lockedin/lockedin-api/internal/models"
)

// Connect opens the database named by DATABASE_URL. A postgres:// URL gets
// the postgres dialector, anything else is treated as a SQLite path.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of dialect; the storage layer depends on
// that to detect duplicate completion days.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Goal{},
		&models.Streak{},
		&models.DailyCompletion{},
		&models.ScreenTimeEntry{},
		&models.MicroSession{},
		&models.FocusSession{},
		&models.Reward{},
		&models.LeaderboardEntry{},
		&models.ShameMetrics{},
	)
}
