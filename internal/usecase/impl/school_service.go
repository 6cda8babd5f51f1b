package impl

import (
	"context"
	"net/mail"
	"strings"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// schoolService implements the SchoolUsecase interface. The roster operations
// are input validation plus repository pass-through; the interesting rules
// (cascades, code uniqueness, teacher unassignment) live in the persistence layer.
type schoolService struct {
	schoolRepo repository.SchoolRepository
}

// SchoolServiceParams holds dependencies for SchoolService, injected by Fx.
type SchoolServiceParams struct {
	fx.In

	SchoolRepo repository.SchoolRepository
}

// NewSchoolService is the constructor for schoolService.
func NewSchoolService(params SchoolServiceParams) usecase.SchoolUsecase {
	return &schoolService{schoolRepo: params.SchoolRepo}
}

// --- Classrooms ---

func (srv *schoolService) CreateClassRoom(ctx context.Context, input usecase.CreateClassRoomInput) (*entity.ClassRoom, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "classroom name is required")
	}

	room := &entity.ClassRoom{
		Name:    name,
		Section: strings.TrimSpace(input.Section),
	}

	if err := srv.schoolRepo.CreateClassRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (srv *schoolService) ListClassRooms(ctx context.Context) ([]*entity.ClassRoom, error) {
	return srv.schoolRepo.FindClassRooms(ctx)
}

func (srv *schoolService) GetClassRoom(ctx context.Context, id uuid.UUID) (*entity.ClassRoom, error) {
	room, err := srv.schoolRepo.FindClassRoomByID(ctx, id)

	return room, translateRosterErr(err)
}

func (srv *schoolService) DeleteClassRoom(ctx context.Context, id uuid.UUID) error {
	return translateRosterErr(srv.schoolRepo.DeleteClassRoom(ctx, id))
}

// --- Subjects ---

func (srv *schoolService) CreateSubject(ctx context.Context, input usecase.CreateSubjectInput) (*entity.Subject, error) {
	name := strings.TrimSpace(input.Name)
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if name == "" || code == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "subject name and code are required")
	}

	subject := &entity.Subject{
		Name:        name,
		Code:        code,
		ClassRoomID: input.ClassRoomID,
	}

	if err := srv.schoolRepo.CreateSubject(ctx, subject); err != nil {
		return nil, translateRosterErr(err)
	}

	return subject, nil
}

func (srv *schoolService) ListSubjectsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Subject, error) {
	return srv.schoolRepo.FindSubjectsByClassRoom(ctx, classRoomID)
}

func (srv *schoolService) GetSubject(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	subject, err := srv.schoolRepo.FindSubjectByID(ctx, id)

	return subject, translateRosterErr(err)
}

func (srv *schoolService) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	return translateRosterErr(srv.schoolRepo.DeleteSubject(ctx, id))
}

// --- Teachers ---

func (srv *schoolService) CreateTeacher(ctx context.Context, input usecase.CreateTeacherInput) (*entity.Teacher, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid teacher email")
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "teacher name is required")
	}

	teacher := &entity.Teacher{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(input.Phone),
		SubjectID: input.SubjectID,
		HireDate:  input.HireDate,
	}

	if err := srv.schoolRepo.CreateTeacher(ctx, teacher); err != nil {
		return nil, translateRosterErr(err)
	}

	return teacher, nil
}

func (srv *schoolService) ListTeachers(ctx context.Context) ([]*entity.Teacher, error) {
	return srv.schoolRepo.FindTeachers(ctx)
}

func (srv *schoolService) GetTeacher(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	teacher, err := srv.schoolRepo.FindTeacherByID(ctx, id)

	return teacher, translateRosterErr(err)
}

func (srv *schoolService) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	return translateRosterErr(srv.schoolRepo.DeleteTeacher(ctx, id))
}

// --- Students ---

func (srv *schoolService) CreateStudent(ctx context.Context, input usecase.CreateStudentInput) (*entity.Student, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid student email")
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "student name is required")
	}
	if !input.Gender.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid gender value")
	}

	student := &entity.Student{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Gender:         input.Gender,
		DateOfBirth:    input.DateOfBirth,
		Email:          email,
		Phone:          strings.TrimSpace(input.Phone),
		Address:        strings.TrimSpace(input.Address),
		ClassRoomID:    input.ClassRoomID,
		EnrollmentDate: input.EnrollmentDate,
	}

	if err := srv.schoolRepo.CreateStudent(ctx, student); err != nil {
		return nil, translateRosterErr(err)
	}

	return student, nil
}

func (srv *schoolService) ListStudentsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Student, error) {
	return srv.schoolRepo.FindStudentsByClassRoom(ctx, classRoomID)
}

func (srv *schoolService) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := srv.schoolRepo.FindStudentByID(ctx, id)

	return student, translateRosterErr(err)
}

func (srv *schoolService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return translateRosterErr(srv.schoolRepo.DeleteStudent(ctx, id))
}

// --- Attendance and marks ---

func (srv *schoolService) RecordAttendance(ctx context.Context, input usecase.CreateAttendanceInput) (*entity.Attendance, error) {
	if !input.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid attendance status")
	}
	if input.Date.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "attendance date is required")
	}

	attendance := &entity.Attendance{
		StudentID: input.StudentID,
		Date:      input.Date,
		Status:    input.Status,
	}

	if err := srv.schoolRepo.CreateAttendance(ctx, attendance); err != nil {
		return nil, translateRosterErr(err)
	}

	return attendance, nil
}

func (srv *schoolService) ListAttendanceByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Attendance, error) {
	return srv.schoolRepo.FindAttendanceByStudent(ctx, studentID)
}

func (srv *schoolService) RecordMark(ctx context.Context, input usecase.CreateMarkInput) (*entity.Mark, error) {
	if input.MarksObtained < 0 || input.TotalMarks <= 0 || input.MarksObtained > input.TotalMarks {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "marks must satisfy 0 <= obtained <= total")
	}

	mark := &entity.Mark{
		StudentID:     input.StudentID,
		SubjectID:     input.SubjectID,
		MarksObtained: input.MarksObtained,
		TotalMarks:    input.TotalMarks,
		ExamDate:      input.ExamDate,
	}

	if err := srv.schoolRepo.CreateMark(ctx, mark); err != nil {
		return nil, translateRosterErr(err)
	}

	return mark, nil
}

func (srv *schoolService) ListMarksByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Mark, error) {
	return srv.schoolRepo.FindMarksByStudent(ctx, studentID)
}

// translateRosterErr maps the repository's not-found sentinels onto the API
// error taxonomy; everything else passes through unchanged.
func translateRosterErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrClassRoomNotFound),
		errors.Is(err, repository.ErrSubjectNotFound),
		errors.Is(err, repository.ErrTeacherNotFound),
		errors.Is(err, repository.ErrStudentNotFound),
		errors.Is(err, repository.ErrAttendanceNotFound),
		errors.Is(err, repository.ErrMarkNotFound):
		return domainerrors.ErrRosterRecordNotFound.WithDetails(err.Error())
	default:
		return err
	}
}
