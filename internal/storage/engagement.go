package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
)

func (s *GormStore) ScreenTimeEntries(goalID uuid.UUID) ([]models.ScreenTimeEntry, error) {
	var entries []models.ScreenTimeEntry
	err := s.db.Where("goal_id = ?", goalID).Order("date DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) CreateScreenTimeEntry(entry *models.ScreenTimeEntry) error {
	return s.db.Create(entry).Error
}

func (s *GormStore) ScreenTimeForDay(goalID uuid.UUID, day time.Time) (int, error) {
	start := models.DayOf(day)
	end := start.AddDate(0, 0, 1)

	var total int64
	err := s.db.Model(&models.ScreenTimeEntry{}).
		Where("goal_id = ? AND date >= ? AND date < ?", goalID, start, end).
		Select("COALESCE(SUM(time_spent_minutes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (s *GormStore) MicroSessions(goalID uuid.UUID) ([]models.MicroSession, error) {
	var sessions []models.MicroSession
	err := s.db.Where("goal_id = ?", goalID).Order("completed_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormStore) CreateMicroSession(session *models.MicroSession) error {
	return s.db.Create(session).Error
}

func (s *GormStore) FocusSessions(goalID uuid.UUID) ([]models.FocusSession, error) {
	var sessions []models.FocusSession
	err := s.db.Where("goal_id = ?", goalID).Order("start_time DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormStore) GetFocusSession(id uuid.UUID) (*models.FocusSession, error) {
	var session models.FocusSession
	if err := s.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *GormStore) CreateFocusSession(session *models.FocusSession) error {
	return s.db.Create(session).Error
}

func (s *GormStore) UpdateFocusSession(session *models.FocusSession) error {
	return translate(s.db.Save(session).Error)
}
