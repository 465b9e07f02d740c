package storage

import (
	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
)

func (s *GormStore) Rewards(goalID uuid.UUID) ([]models.Reward, error) {
	var rewards []models.Reward
	err := s.db.Where("goal_id = ?", goalID).Order("unlocked_at DESC").Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

func (s *GormStore) CreateReward(reward *models.Reward) error {
	return s.db.Create(reward).Error
}

func (s *GormStore) GetReward(id uuid.UUID) (*models.Reward, error) {
	var reward models.Reward
	if err := s.db.First(&reward, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &reward, nil
}

func (s *GormStore) UpdateReward(reward *models.Reward) error {
	return translate(s.db.Save(reward).Error)
}

func (s *GormStore) Leaderboard() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := s.db.Order("streak_count DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) GetLeaderboardEntry(goalID uuid.UUID) (*models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	if err := s.db.First(&entry, "goal_id = ?", goalID).Error; err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

func (s *GormStore) SaveLeaderboardEntry(entry *models.LeaderboardEntry) error {
	return translate(s.db.Save(entry).Error)
}

func (s *GormStore) GetShameMetrics(goalID uuid.UUID) (*models.ShameMetrics, error) {
	var metrics models.ShameMetrics
	if err := s.db.First(&metrics, "goal_id = ?", goalID).Error; err != nil {
		return nil, translate(err)
	}
	return &metrics, nil
}

func (s *GormStore) SaveShameMetrics(metrics *models.ShameMetrics) error {
	return translate(s.db.Save(metrics).Error)
}
