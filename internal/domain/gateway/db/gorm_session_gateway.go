package db

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-tracker/internal/domain/entity"
)

type GormSessionGateway struct {
	DB *gorm.DB
}

var _ SessionGateway = (*GormSessionGateway)(nil)

func NewGormSessionGateway(db *gorm.DB) *GormSessionGateway {
	return &GormSessionGateway{DB: db}
}

func (gateway *GormSessionGateway) FindByKey(ctx context.Context, key string, now time.Time) (*entity.Session, error) {
	var session entity.Session
	err := gateway.DB.WithContext(ctx).
		Preload("User").
		Where("session_key = ? AND expires_at > ?", key, now).
		First(&session).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &session, nil
}

func (gateway *GormSessionGateway) Create(ctx context.Context, session entity.Session) (*entity.Session, error) {
	if err := gateway.DB.WithContext(ctx).Omit(clause.Associations).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (gateway *GormSessionGateway) UpdateNotices(ctx context.Context, key string, notices []string) error {
	return gateway.DB.WithContext(ctx).
		Model(&entity.Session{}).
		Where("session_key = ?", key).
		Select("notices").
		Updates(&entity.Session{Notices: notices}).Error
}

func (gateway *GormSessionGateway) DeleteByKey(ctx context.Context, key string) error {
	return gateway.DB.WithContext(ctx).Where("session_key = ?", key).Delete(&entity.Session{}).Error
}

func (gateway *GormSessionGateway) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := gateway.DB.WithContext(ctx).Where("expires_at <= ?", now).Delete(&entity.Session{})
	return result.RowsAffected, result.Error
}
