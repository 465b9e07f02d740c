package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
)

func (s *GormStore) GetStreak(goalID uuid.UUID) (*models.Streak, error) {
	var streak models.Streak
	if err := s.db.First(&streak, "goal_id = ?", goalID).Error; err != nil {
		return nil, translate(err)
	}
	return &streak, nil
}

func (s *GormStore) UpdateStreak(streak *models.Streak) error {
	return translate(s.db.Save(streak).Error)
}

func (s *GormStore) GetDailyCompletion(goalID uuid.UUID, day time.Time) (*models.DailyCompletion, error) {
	var completion models.DailyCompletion
	err := s.db.First(&completion, "goal_id = ? AND date = ?", goalID, models.DayOf(day)).Error
	if err != nil {
		return nil, translate(err)
	}
	return &completion, nil
}

func (s *GormStore) CreateDailyCompletion(completion *models.DailyCompletion) error {
	completion.Date = models.DayOf(completion.Date)
	return translate(s.db.Create(completion).Error)
}

func (s *GormStore) CompletionsForGoal(goalID uuid.UUID) ([]models.DailyCompletion, error) {
	var completions []models.DailyCompletion
	err := s.db.Where("goal_id = ?", goalID).Order("date ASC").Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}
