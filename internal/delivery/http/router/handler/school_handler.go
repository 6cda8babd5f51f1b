package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ecycle/internal/delivery/http/response"
	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format of the roster API's date fields.
const dateLayout = "2006-01-02"

// SchoolHandler serves the school roster CRUD API as plain JSON.
type SchoolHandler struct {
	schoolUsecase usecase.SchoolUsecase
	logger        *slog.Logger
}

// NewSchoolHandler is the constructor for SchoolHandler.
func NewSchoolHandler(schoolUsecase usecase.SchoolUsecase, logger *slog.Logger) *SchoolHandler {
	return &SchoolHandler{
		schoolUsecase: schoolUsecase,
		logger:        logger,
	}
}

// --- Request DTOs ---

type createClassRoomRequest struct {
	Name    string `json:"name" validate:"required"`
	Section string `json:"section"`
}

type createSubjectRequest struct {
	Name        string    `json:"name" validate:"required"`
	Code        string    `json:"code" validate:"required"`
	ClassRoomID uuid.UUID `json:"class_room_id" validate:"required"`
}

type createTeacherRequest struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Phone     string     `json:"phone"`
	SubjectID *uuid.UUID `json:"subject_id"`
	HireDate  string     `json:"hire_date" validate:"required"`
}

type createStudentRequest struct {
	FirstName      string    `json:"first_name" validate:"required"`
	LastName       string    `json:"last_name" validate:"required"`
	Gender         string    `json:"gender" validate:"required"`
	DateOfBirth    string    `json:"date_of_birth" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	ClassRoomID    uuid.UUID `json:"class_room_id" validate:"required"`
	EnrollmentDate string    `json:"enrollment_date" validate:"required"`
}

type createAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	Status    string    `json:"status" validate:"required"`
}

type createMarkRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	SubjectID     uuid.UUID `json:"subject_id" validate:"required"`
	MarksObtained float64   `json:"marks_obtained" validate:"min=0"`
	TotalMarks    float64   `json:"total_marks" validate:"required,gt=0"`
	ExamDate      string    `json:"exam_date" validate:"required"`
}

// --- Response DTOs ---

type classRoomResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Section string    `json:"section"`
}

type subjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	ClassRoomID uuid.UUID `json:"class_room_id"`
}

type teacherResponse struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	HireDate  string     `json:"hire_date"`
}

type studentResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Gender         string    `json:"gender"`
	DateOfBirth    string    `json:"date_of_birth"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	ClassRoomID    uuid.UUID `json:"class_room_id"`
	EnrollmentDate string    `json:"enrollment_date"`
}

type attendanceResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
}

type markResponse struct {
	ID            uuid.UUID `json:"id"`
	StudentID     uuid.UUID `json:"student_id"`
	SubjectID     uuid.UUID `json:"subject_id"`
	MarksObtained float64   `json:"marks_obtained"`
	TotalMarks    float64   `json:"total_marks"`
	ExamDate      string    `json:"exam_date"`
}

func toClassRoomResponse(c *entity.ClassRoom) classRoomResponse {
	return classRoomResponse{ID: c.ID, Name: c.Name, Section: c.Section}
}

func toSubjectResponse(s *entity.Subject) subjectResponse {
	return subjectResponse{ID: s.ID, Name: s.Name, Code: s.Code, ClassRoomID: s.ClassRoomID}
}

func toTeacherResponse(t *entity.Teacher) teacherResponse {
	return teacherResponse{
		ID:        t.ID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		Phone:     t.Phone,
		SubjectID: t.SubjectID,
		HireDate:  t.HireDate.Format(dateLayout),
	}
}

func toStudentResponse(s *entity.Student) studentResponse {
	return studentResponse{
		ID:             s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Gender:         string(s.Gender),
		DateOfBirth:    s.DateOfBirth.Format(dateLayout),
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		ClassRoomID:    s.ClassRoomID,
		EnrollmentDate: s.EnrollmentDate.Format(dateLayout),
	}
}

func toAttendanceResponse(a *entity.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:        a.ID,
		StudentID: a.StudentID,
		Date:      a.Date.Format(dateLayout),
		Status:    string(a.Status),
	}
}

func toMarkResponse(m *entity.Mark) markResponse {
	return markResponse{
		ID:            m.ID,
		StudentID:     m.StudentID,
		SubjectID:     m.SubjectID,
		MarksObtained: m.MarksObtained,
		TotalMarks:    m.TotalMarks,
		ExamDate:      m.ExamDate.Format(dateLayout),
	}
}

func mapSlice[T any, R any](items []T, mapper func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapper(item))
	}

	return result
}

// --- Classrooms ---

// CreateClassRoom handles POST /api/school/classrooms/.
func (h *SchoolHandler) CreateClassRoom(c echo.Context) error {
	var req createClassRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	classRoom, err := h.schoolUsecase.CreateClassRoom(c.Request().Context(), usecase.CreateClassRoomInput{
		Name:    req.Name,
		Section: req.Section,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toClassRoomResponse(classRoom), "Classroom created")
}

// ListClassRooms handles GET /api/school/classrooms/.
func (h *SchoolHandler) ListClassRooms(c echo.Context) error {
	classRooms, err := h.schoolUsecase.ListClassRooms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(classRooms, toClassRoomResponse), "")
}

// GetClassRoom handles GET /api/school/classrooms/:id.
func (h *SchoolHandler) GetClassRoom(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	classRoom, err := h.schoolUsecase.GetClassRoom(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClassRoomResponse(classRoom), "")
}

// DeleteClassRoom handles DELETE /api/school/classrooms/:id.
func (h *SchoolHandler) DeleteClassRoom(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.schoolUsecase.DeleteClassRoom(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Classroom deleted")
}

// --- Subjects ---

// CreateSubject handles POST /api/school/subjects/.
func (h *SchoolHandler) CreateSubject(c echo.Context) error {
	var req createSubjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	subject, err := h.schoolUsecase.CreateSubject(c.Request().Context(), usecase.CreateSubjectInput{
		Name:        req.Name,
		Code:        req.Code,
		ClassRoomID: req.ClassRoomID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSubjectResponse(subject), "Subject created")
}

// ListSubjects handles GET /api/school/classrooms/:id/subjects.
func (h *SchoolHandler) ListSubjects(c echo.Context) error {
	classRoomID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	subjects, err := h.schoolUsecase.ListSubjectsByClassRoom(c.Request().Context(), classRoomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(subjects, toSubjectResponse), "")
}

// GetSubject handles GET /api/school/subjects/:id.
func (h *SchoolHandler) GetSubject(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	subject, err := h.schoolUsecase.GetSubject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSubjectResponse(subject), "")
}

// DeleteSubject handles DELETE /api/school/subjects/:id. Teachers assigned
// to the subject are unassigned, not deleted.
func (h *SchoolHandler) DeleteSubject(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.schoolUsecase.DeleteSubject(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subject deleted")
}

// --- Teachers ---

// CreateTeacher handles POST /api/school/teachers/.
func (h *SchoolHandler) CreateTeacher(c echo.Context) error {
	var req createTeacherRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hireDate, err := parseDate(req.HireDate, "hire_date")
	if err != nil {
		return err
	}

	teacher, err := h.schoolUsecase.CreateTeacher(c.Request().Context(), usecase.CreateTeacherInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		SubjectID: req.SubjectID,
		HireDate:  hireDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTeacherResponse(teacher), "Teacher created")
}

// ListTeachers handles GET /api/school/teachers/.
func (h *SchoolHandler) ListTeachers(c echo.Context) error {
	teachers, err := h.schoolUsecase.ListTeachers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(teachers, toTeacherResponse), "")
}

// GetTeacher handles GET /api/school/teachers/:id.
func (h *SchoolHandler) GetTeacher(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	teacher, err := h.schoolUsecase.GetTeacher(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTeacherResponse(teacher), "")
}

// DeleteTeacher handles DELETE /api/school/teachers/:id.
func (h *SchoolHandler) DeleteTeacher(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.schoolUsecase.DeleteTeacher(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Teacher deleted")
}

// --- Students ---

// CreateStudent handles POST /api/school/students/.
func (h *SchoolHandler) CreateStudent(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dateOfBirth, err := parseDate(req.DateOfBirth, "date_of_birth")
	if err != nil {
		return err
	}
	enrollmentDate, err := parseDate(req.EnrollmentDate, "enrollment_date")
	if err != nil {
		return err
	}

	student, err := h.schoolUsecase.CreateStudent(c.Request().Context(), usecase.CreateStudentInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         entity.Gender(req.Gender),
		DateOfBirth:    dateOfBirth,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		ClassRoomID:    req.ClassRoomID,
		EnrollmentDate: enrollmentDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStudentResponse(student), "Student enrolled")
}

// ListStudents handles GET /api/school/classrooms/:id/students.
func (h *SchoolHandler) ListStudents(c echo.Context) error {
	classRoomID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	students, err := h.schoolUsecase.ListStudentsByClassRoom(c.Request().Context(), classRoomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(students, toStudentResponse), "")
}

// GetStudent handles GET /api/school/students/:id.
func (h *SchoolHandler) GetStudent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	student, err := h.schoolUsecase.GetStudent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentResponse(student), "")
}

// DeleteStudent handles DELETE /api/school/students/:id.
func (h *SchoolHandler) DeleteStudent(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.schoolUsecase.DeleteStudent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Student deleted")
}

// --- Attendance ---

// RecordAttendance handles POST /api/school/attendance/.
func (h *SchoolHandler) RecordAttendance(c echo.Context) error {
	var req createAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := parseDate(req.Date, "date")
	if err != nil {
		return err
	}

	attendance, err := h.schoolUsecase.RecordAttendance(c.Request().Context(), usecase.CreateAttendanceInput{
		StudentID: req.StudentID,
		Date:      date,
		Status:    entity.AttendanceStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAttendanceResponse(attendance), "Attendance recorded")
}

// ListAttendance handles GET /api/school/students/:id/attendance.
func (h *SchoolHandler) ListAttendance(c echo.Context) error {
	studentID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	records, err := h.schoolUsecase.ListAttendanceByStudent(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(records, toAttendanceResponse), "")
}

// --- Marks ---

// RecordMark handles POST /api/school/marks/.
func (h *SchoolHandler) RecordMark(c echo.Context) error {
	var req createMarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	examDate, err := parseDate(req.ExamDate, "exam_date")
	if err != nil {
		return err
	}

	mark, err := h.schoolUsecase.RecordMark(c.Request().Context(), usecase.CreateMarkInput{
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		ExamDate:      examDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMarkResponse(mark), "Mark recorded")
}

// ListMarks handles GET /api/school/students/:id/marks.
func (h *SchoolHandler) ListMarks(c echo.Context) error {
	studentID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	marks, err := h.schoolUsecase.ListMarksByStudent(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mapSlice(marks, toMarkResponse), "")
}

// --- helpers ---

func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("the id path parameter is not a valid UUID")
	}

	return id, nil
}

func parseDate(value, field string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(field + " must be formatted as " + dateLayout)
	}

	return parsed, nil
}
