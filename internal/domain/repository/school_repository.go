// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the school roster.
var (
	ErrClassRoomNotFound  = errors.New("classroom not found")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrMarkNotFound       = errors.New("mark not found")
)

// SchoolRepository defines CRUD operations over the school roster graph.
// The roster is an independent domain; one repository keeps its surface
// together rather than spreading six trivially different interfaces.
type SchoolRepository interface {
	CreateClassRoom(ctx context.Context, room *entity.ClassRoom) error
	FindClassRooms(ctx context.Context) ([]*entity.ClassRoom, error)
	FindClassRoomByID(ctx context.Context, id uuid.UUID) (*entity.ClassRoom, error)
	DeleteClassRoom(ctx context.Context, id uuid.UUID) error

	CreateSubject(ctx context.Context, subject *entity.Subject) error
	FindSubjectsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Subject, error)
	FindSubjectByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error)
	DeleteSubject(ctx context.Context, id uuid.UUID) error

	CreateTeacher(ctx context.Context, teacher *entity.Teacher) error
	FindTeachers(ctx context.Context) ([]*entity.Teacher, error)
	FindTeacherByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)
	DeleteTeacher(ctx context.Context, id uuid.UUID) error

	CreateStudent(ctx context.Context, student *entity.Student) error
	FindStudentsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Student, error)
	FindStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error

	CreateAttendance(ctx context.Context, attendance *entity.Attendance) error
	FindAttendanceByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Attendance, error)

	CreateMark(ctx context.Context, mark *entity.Mark) error
	FindMarksByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Mark, error)
}
