package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

// GoalService handles goal CRUD and the invariants around it: a goal is
// always created together with a zeroed streak, and deleting a goal takes
// its whole history with it.
type GoalService struct {
	store storage.Storage
	now   func() time.Time
}

func NewGoalService(store storage.Storage) *GoalService {
	return &GoalService{store: store, now: time.Now}
}

func (s *GoalService) Create(req models.CreateGoalRequest) (*models.Goal, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationErr("name is required")
	}
	if req.Deadline.IsZero() {
		return nil, validationErr("deadline is required")
	}
	if !req.Deadline.After(s.now()) {
		return nil, validationErr("deadline must be in the future")
	}

	goal := &models.Goal{
		Name:     req.Name,
		Deadline: req.Deadline,
		Reason:   req.Reason,
	}
	streak := &models.Streak{}
	if err := s.store.CreateGoal(goal, streak); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Get(id uuid.UUID) (*models.Goal, error) {
	return s.store.GetGoal(id)
}

func (s *GoalService) List() ([]models.Goal, error) {
	return s.store.ListGoals()
}

// Update applies a partial update. Only name, deadline and reason are
// mutable; id and createdAt never change.
func (s *GoalService) Update(id uuid.UUID, req models.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.store.GetGoal(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, validationErr("name cannot be empty")
		}
		goal.Name = *req.Name
	}
	if req.Deadline != nil {
		if req.Deadline.IsZero() {
			return nil, validationErr("deadline cannot be empty")
		}
		goal.Deadline = *req.Deadline
	}
	if req.Reason != nil {
		goal.Reason = req.Reason
	}

	if err := s.store.UpdateGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes the goal and all dependent records. "Nothing deleted" is a
// normal false return, not an error.
func (s *GoalService) Delete(id uuid.UUID) (bool, error) {
	return s.store.DeleteGoal(id)
}
