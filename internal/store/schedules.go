package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var (
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrUnknownSession   = errors.New("combination references sessions that are not stored")
	ErrScheduleNotFound = errors.New("schedule not found")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type SaveRequest struct {
	UserId      uint64                `validate:"required"`
	Name        string                `validate:"required,max=100"`
	Description string                `validate:"max=500"`
	IsFavorite  bool
	Combination model.CombinationView `validate:"required"`
}

// SaveSchedule stores a generated combination under the user's name, issuing a fresh share token
func (repository *Repository) SaveSchedule(ctx context.Context, request SaveRequest) (Schedule, error) {
	if err := validate.Struct(request); err != nil {
		return Schedule{}, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	if len(request.Combination.Courses) == 0 {
		return Schedule{}, fmt.Errorf("%w: combination has no courses", ErrInvalidSchedule)
	}

	members := make([]ScheduleSession, 0)
	for _, course := range request.Combination.Courses {
		for _, session := range course.Sessions {
			members = append(members, ScheduleSession{
				SectionID:  course.SectionId,
				SessionID:  session.SessionId,
				CourseCode: course.CourseCode,
			})
		}
	}

	schedule := Schedule{
		UserID:           request.UserId,
		Name:             request.Name,
		Description:      request.Description,
		ShareToken:       uuid.NewString(),
		CombinationToken: request.Combination.CombinationId,
		CombinationKey:   request.Combination.IdString,
		TotalCredits:     request.Combination.TotalCredits,
		IsFavorite:       request.IsFavorite,
		Sessions:         members,
	}

	err := repository.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessionIds := lo.Uniq(lo.Map(members, func(member ScheduleSession, _ int) uint64 { return member.SessionID }))

		var stored []Session
		if err := tx.Where("id IN ?", sessionIds).Find(&stored).Error; err != nil {
			return err
		}
		sections := lo.SliceToMap(stored, func(session Session) (uint64, uint64) { return session.ID, session.SectionID })
		for _, member := range members {
			if section, ok := sections[member.SessionID]; !ok || section != member.SectionID {
				return fmt.Errorf("session %v of section %v: %w", member.SessionID, member.SectionID, ErrUnknownSession)
			}
		}

		return tx.Create(&schedule).Error
	})
	if err != nil {
		return Schedule{}, err
	}
	return schedule, nil
}

// Most recent first
func (repository *Repository) ListSchedules(ctx context.Context, userId uint64) ([]Schedule, error) {
	var schedules []Schedule
	err := repository.db.WithContext(ctx).
		Preload("Sessions").
		Where("user_id = ?", userId).
		Order("created_at DESC, id DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repository *Repository) FindByShareToken(ctx context.Context, token string) (Schedule, error) {
	var schedule Schedule
	err := repository.db.WithContext(ctx).
		Preload("Sessions").
		Where("share_token = ?", token).
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Schedule{}, ErrScheduleNotFound
	} else if err != nil {
		return Schedule{}, err
	}
	return schedule, nil
}

// Soft-deletes the schedule, which must belong to the user
func (repository *Repository) DeleteSchedule(ctx context.Context, userId, scheduleId uint64) error {
	result := repository.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scheduleId, userId).
		Delete(&Schedule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
