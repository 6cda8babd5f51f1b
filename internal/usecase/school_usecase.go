package usecase

import (
	"context"
	"time"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateClassRoomInput defines the data required to create a classroom.
type CreateClassRoomInput struct {
	Name    string
	Section string
}

// CreateSubjectInput defines the data required to create a subject.
type CreateSubjectInput struct {
	Name        string
	Code        string
	ClassRoomID uuid.UUID
}

// CreateTeacherInput defines the data required to create a teacher.
type CreateTeacherInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	SubjectID *uuid.UUID
	HireDate  time.Time
}

// CreateStudentInput defines the data required to enroll a student.
type CreateStudentInput struct {
	FirstName      string
	LastName       string
	Gender         entity.Gender
	DateOfBirth    time.Time
	Email          string
	Phone          string
	Address        string
	ClassRoomID    uuid.UUID
	EnrollmentDate time.Time
}

// CreateAttendanceInput defines the data required to record attendance.
type CreateAttendanceInput struct {
	StudentID uuid.UUID
	Date      time.Time
	Status    entity.AttendanceStatus
}

// CreateMarkInput defines the data required to record an exam mark.
type CreateMarkInput struct {
	StudentID     uuid.UUID
	SubjectID     uuid.UUID
	MarksObtained float64
	TotalMarks    float64
	ExamDate      time.Time
}

// SchoolUsecase defines the CRUD operations over the school roster.
// The roster is independent of the recycling domain; its operations are
// validation plus repository pass-through.
type SchoolUsecase interface {
	CreateClassRoom(ctx context.Context, input CreateClassRoomInput) (*entity.ClassRoom, error)
	ListClassRooms(ctx context.Context) ([]*entity.ClassRoom, error)
	GetClassRoom(ctx context.Context, id uuid.UUID) (*entity.ClassRoom, error)
	DeleteClassRoom(ctx context.Context, id uuid.UUID) error

	CreateSubject(ctx context.Context, input CreateSubjectInput) (*entity.Subject, error)
	ListSubjectsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Subject, error)
	GetSubject(ctx context.Context, id uuid.UUID) (*entity.Subject, error)
	DeleteSubject(ctx context.Context, id uuid.UUID) error

	CreateTeacher(ctx context.Context, input CreateTeacherInput) (*entity.Teacher, error)
	ListTeachers(ctx context.Context) ([]*entity.Teacher, error)
	GetTeacher(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)
	DeleteTeacher(ctx context.Context, id uuid.UUID) error

	CreateStudent(ctx context.Context, input CreateStudentInput) (*entity.Student, error)
	ListStudentsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error

	RecordAttendance(ctx context.Context, input CreateAttendanceInput) (*entity.Attendance, error)
	ListAttendanceByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Attendance, error)

	RecordMark(ctx context.Context, input CreateMarkInput) (*entity.Mark, error)
	ListMarksByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Mark, error)
}
