package impl

import (
	"context"
	"testing"
	"time"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeSchoolRepo records creates and answers lookups from memory.
type fakeSchoolRepo struct {
	rooms       []*entity.ClassRoom
	subjects    []*entity.Subject
	teachers    []*entity.Teacher
	students    []*entity.Student
	attendances []*entity.Attendance
	marks       []*entity.Mark
}

func (r *fakeSchoolRepo) CreateClassRoom(_ context.Context, room *entity.ClassRoom) error {
	room.ID = uuid.New()
	r.rooms = append(r.rooms, room)

	return nil
}

func (r *fakeSchoolRepo) FindClassRooms(_ context.Context) ([]*entity.ClassRoom, error) {
	return r.rooms, nil
}

func (r *fakeSchoolRepo) FindClassRoomByID(_ context.Context, id uuid.UUID) (*entity.ClassRoom, error) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, nil
		}
	}

	return nil, repository.ErrClassRoomNotFound
}

func (r *fakeSchoolRepo) DeleteClassRoom(_ context.Context, id uuid.UUID) error {
	for i, room := range r.rooms {
		if room.ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)

			return nil
		}
	}

	return repository.ErrClassRoomNotFound
}

func (r *fakeSchoolRepo) CreateSubject(_ context.Context, subject *entity.Subject) error {
	subject.ID = uuid.New()
	r.subjects = append(r.subjects, subject)

	return nil
}

func (r *fakeSchoolRepo) FindSubjectsByClassRoom(_ context.Context, classRoomID uuid.UUID) ([]*entity.Subject, error) {
	var out []*entity.Subject
	for _, subject := range r.subjects {
		if subject.ClassRoomID == classRoomID {
			out = append(out, subject)
		}
	}

	return out, nil
}

func (r *fakeSchoolRepo) FindSubjectByID(_ context.Context, id uuid.UUID) (*entity.Subject, error) {
	for _, subject := range r.subjects {
		if subject.ID == id {
			return subject, nil
		}
	}

	return nil, repository.ErrSubjectNotFound
}

func (r *fakeSchoolRepo) DeleteSubject(_ context.Context, id uuid.UUID) error {
	for i, subject := range r.subjects {
		if subject.ID == id {
			r.subjects = append(r.subjects[:i], r.subjects[i+1:]...)

			return nil
		}
	}

	return repository.ErrSubjectNotFound
}

func (r *fakeSchoolRepo) CreateTeacher(_ context.Context, teacher *entity.Teacher) error {
	teacher.ID = uuid.New()
	r.teachers = append(r.teachers, teacher)

	return nil
}

func (r *fakeSchoolRepo) FindTeachers(_ context.Context) ([]*entity.Teacher, error) {
	return r.teachers, nil
}

func (r *fakeSchoolRepo) FindTeacherByID(_ context.Context, id uuid.UUID) (*entity.Teacher, error) {
	for _, teacher := range r.teachers {
		if teacher.ID == id {
			return teacher, nil
		}
	}

	return nil, repository.ErrTeacherNotFound
}

func (r *fakeSchoolRepo) DeleteTeacher(_ context.Context, id uuid.UUID) error {
	for i, teacher := range r.teachers {
		if teacher.ID == id {
			r.teachers = append(r.teachers[:i], r.teachers[i+1:]...)

			return nil
		}
	}

	return repository.ErrTeacherNotFound
}

func (r *fakeSchoolRepo) CreateStudent(_ context.Context, student *entity.Student) error {
	student.ID = uuid.New()
	r.students = append(r.students, student)

	return nil
}

func (r *fakeSchoolRepo) FindStudentsByClassRoom(_ context.Context, classRoomID uuid.UUID) ([]*entity.Student, error) {
	var out []*entity.Student
	for _, student := range r.students {
		if student.ClassRoomID == classRoomID {
			out = append(out, student)
		}
	}

	return out, nil
}

func (r *fakeSchoolRepo) FindStudentByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	for _, student := range r.students {
		if student.ID == id {
			return student, nil
		}
	}

	return nil, repository.ErrStudentNotFound
}

func (r *fakeSchoolRepo) DeleteStudent(_ context.Context, id uuid.UUID) error {
	for i, student := range r.students {
		if student.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)

			return nil
		}
	}

	return repository.ErrStudentNotFound
}

func (r *fakeSchoolRepo) CreateAttendance(_ context.Context, attendance *entity.Attendance) error {
	attendance.ID = uuid.New()
	r.attendances = append(r.attendances, attendance)

	return nil
}

func (r *fakeSchoolRepo) FindAttendanceByStudent(_ context.Context, studentID uuid.UUID) ([]*entity.Attendance, error) {
	var out []*entity.Attendance
	for _, attendance := range r.attendances {
		if attendance.StudentID == studentID {
			out = append(out, attendance)
		}
	}

	return out, nil
}

func (r *fakeSchoolRepo) CreateMark(_ context.Context, mark *entity.Mark) error {
	mark.ID = uuid.New()
	r.marks = append(r.marks, mark)

	return nil
}

func (r *fakeSchoolRepo) FindMarksByStudent(_ context.Context, studentID uuid.UUID) ([]*entity.Mark, error) {
	var out []*entity.Mark
	for _, mark := range r.marks {
		if mark.StudentID == studentID {
			out = append(out, mark)
		}
	}

	return out, nil
}

func newSchoolServiceForTest() (usecase.SchoolUsecase, *fakeSchoolRepo) {
	repo := &fakeSchoolRepo{}

	return NewSchoolService(SchoolServiceParams{SchoolRepo: repo}), repo
}

func TestCreateClassRoomTrimsInput(t *testing.T) {
	srv, _ := newSchoolServiceForTest()

	room, err := srv.CreateClassRoom(context.Background(), usecase.CreateClassRoomInput{
		Name:    " Grade 8 ",
		Section: " A ",
	})
	require.NoError(t, err)
	require.Equal(t, "Grade 8", room.Name)
	require.Equal(t, "A", room.Section)
	require.NotEqual(t, uuid.Nil, room.ID)
}

func TestCreateClassRoomRequiresName(t *testing.T) {
	srv, _ := newSchoolServiceForTest()

	_, err := srv.CreateClassRoom(context.Background(), usecase.CreateClassRoomInput{Section: "A"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCreateSubjectUppercasesCode(t *testing.T) {
	srv, _ := newSchoolServiceForTest()

	subject, err := srv.CreateSubject(context.Background(), usecase.CreateSubjectInput{
		Name:        "Mathematics",
		Code:        "math8",
		ClassRoomID: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, "MATH8", subject.Code)
}

func TestCreateStudentValidatesGender(t *testing.T) {
	srv, _ := newSchoolServiceForTest()

	_, err := srv.CreateStudent(context.Background(), usecase.CreateStudentInput{
		FirstName:   "Ravi",
		LastName:    "Kumar",
		Gender:      "X",
		Email:       "ravi@example.com",
		ClassRoomID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecordAttendanceValidatesStatus(t *testing.T) {
	srv, _ := newSchoolServiceForTest()

	_, err := srv.RecordAttendance(context.Background(), usecase.CreateAttendanceInput{
		StudentID: uuid.New(),
		Date:      time.Now(),
		Status:    "Q",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecordMarkValidatesBounds(t *testing.T) {
	srv, repo := newSchoolServiceForTest()

	_, err := srv.RecordMark(context.Background(), usecase.CreateMarkInput{
		StudentID:     uuid.New(),
		SubjectID:     uuid.New(),
		MarksObtained: 110,
		TotalMarks:    100,
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	require.Empty(t, repo.marks)

	mark, err := srv.RecordMark(context.Background(), usecase.CreateMarkInput{
		StudentID:     uuid.New(),
		SubjectID:     uuid.New(),
		MarksObtained: 88,
		TotalMarks:    100,
		ExamDate:      time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, float64(88), mark.MarksObtained)
}
