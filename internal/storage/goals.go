package storage

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lockedin/lockedin-api/internal/models"
)

func (s *GormStore) CreateGoal(goal *models.Goal, streak *models.Streak) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		streak.GoalID = goal.ID
		return tx.Create(streak).Error
	})
}

func (s *GormStore) GetGoal(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

func (s *GormStore) ListGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *GormStore) UpdateGoal(goal *models.Goal) error {
	return translate(s.db.Save(goal).Error)
}

func (s *GormStore) DeleteGoal(id uuid.UUID) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Goal{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true

		for _, dependent := range []interface{}{
			&models.Streak{},
			&models.DailyCompletion{},
			&models.ScreenTimeEntry{},
			&models.MicroSession{},
			&models.FocusSession{},
			&models.Reward{},
			&models.LeaderboardEntry{},
			&models.ShameMetrics{},
		} {
			if err := tx.Where("goal_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return deleted, err
}
