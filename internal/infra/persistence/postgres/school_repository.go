package postgres

import (
	"context"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schoolRepository implements the domain.SchoolRepository interface using GORM.
// The roster graph shares one repository because its six entities are served
// by the same CRUD surface.
type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository is the constructor for schoolRepository.
func NewSchoolRepository(db *gorm.DB) repository.SchoolRepository {
	return &schoolRepository{db: db}
}

// --- Classrooms ---

// CreateClassRoom persists a new classroom.
func (repo *schoolRepository) CreateClassRoom(ctx context.Context, room *entity.ClassRoom) error {
	roomM := &model.ClassRoomModel{
		ID:      room.ID,
		Name:    room.Name,
		Section: room.Section,
	}

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create classroom")
	}

	room.ID = roomM.ID

	return nil
}

// FindClassRooms returns every classroom ordered by name then section.
func (repo *schoolRepository) FindClassRooms(ctx context.Context) ([]*entity.ClassRoom, error) {
	var roomMs []model.ClassRoomModel
	err := repo.db.WithContext(ctx).
		Order("name, section").
		Find(&roomMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list classrooms")
	}

	rooms := make([]*entity.ClassRoom, 0, len(roomMs))
	for i := range roomMs {
		rooms = append(rooms, toClassRoomDomain(&roomMs[i]))
	}

	return rooms, nil
}

// FindClassRoomByID retrieves a single classroom by its unique ID.
func (repo *schoolRepository) FindClassRoomByID(ctx context.Context, id uuid.UUID) (*entity.ClassRoom, error) {
	var roomM model.ClassRoomModel
	err := repo.db.WithContext(ctx).First(&roomM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find classroom by id")
	}

	return toClassRoomDomain(&roomM), nil
}

// DeleteClassRoom removes a classroom. Subjects and students cascade in the database.
func (repo *schoolRepository) DeleteClassRoom(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ClassRoomModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete classroom")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassRoomNotFound
	}

	return nil
}

// --- Subjects ---

// CreateSubject persists a new subject. The subject code is unique school-wide.
func (repo *schoolRepository) CreateSubject(ctx context.Context, subject *entity.Subject) error {
	subjectM := &model.SubjectModel{
		ID:          subject.ID,
		Name:        subject.Name,
		Code:        subject.Code,
		ClassRoomID: subject.ClassRoomID,
	}

	if err := repo.db.WithContext(ctx).Create(subjectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRosterConflict.WrapMessage("subject code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClassRoomNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subject")
	}

	subject.ID = subjectM.ID

	return nil
}

// FindSubjectsByClassRoom returns a classroom's subjects ordered by name.
func (repo *schoolRepository) FindSubjectsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Subject, error) {
	var subjectMs []model.SubjectModel
	err := repo.db.WithContext(ctx).
		Where("class_room_id = ?", classRoomID).
		Order("name").
		Find(&subjectMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	subjects := make([]*entity.Subject, 0, len(subjectMs))
	for i := range subjectMs {
		subjects = append(subjects, toSubjectDomain(&subjectMs[i]))
	}

	return subjects, nil
}

// FindSubjectByID retrieves a single subject by its unique ID.
func (repo *schoolRepository) FindSubjectByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	var subjectM model.SubjectModel
	err := repo.db.WithContext(ctx).First(&subjectM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find subject by id")
	}

	return toSubjectDomain(&subjectM), nil
}

// DeleteSubject removes a subject. Teacher assignments to the subject are
// cleared first so teacher records survive the deletion.
func (repo *schoolRepository) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.TeacherModel{}).
		Where("subject_id = ?", id).
		Update("subject_id", nil).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unassign teachers from subject")
	}

	result := repo.db.WithContext(ctx).Delete(&model.SubjectModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subject")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

// --- Teachers ---

// CreateTeacher persists a new teacher.
func (repo *schoolRepository) CreateTeacher(ctx context.Context, teacher *entity.Teacher) error {
	teacherM := &model.TeacherModel{
		ID:        teacher.ID,
		FirstName: teacher.FirstName,
		LastName:  teacher.LastName,
		Email:     teacher.Email,
		Phone:     teacher.Phone,
		SubjectID: teacher.SubjectID,
		HireDate:  teacher.HireDate,
	}

	if err := repo.db.WithContext(ctx).Create(teacherM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRosterConflict.WrapMessage("teacher email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubjectNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create teacher")
	}

	teacher.ID = teacherM.ID

	return nil
}

// FindTeachers returns every teacher ordered by last name then first name.
func (repo *schoolRepository) FindTeachers(ctx context.Context) ([]*entity.Teacher, error) {
	var teacherMs []model.TeacherModel
	err := repo.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&teacherMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}

	teachers := make([]*entity.Teacher, 0, len(teacherMs))
	for i := range teacherMs {
		teachers = append(teachers, toTeacherDomain(&teacherMs[i]))
	}

	return teachers, nil
}

// FindTeacherByID retrieves a single teacher by their unique ID.
func (repo *schoolRepository) FindTeacherByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	var teacherM model.TeacherModel
	err := repo.db.WithContext(ctx).First(&teacherM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeacherNotFound
		}

		return nil, errors.Wrap(err, "failed to find teacher by id")
	}

	return toTeacherDomain(&teacherM), nil
}

// DeleteTeacher removes a teacher.
func (repo *schoolRepository) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TeacherModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete teacher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeacherNotFound
	}

	return nil
}

// --- Students ---

// CreateStudent persists a new student.
func (repo *schoolRepository) CreateStudent(ctx context.Context, student *entity.Student) error {
	studentM := &model.StudentModel{
		ID:             student.ID,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		Gender:         string(student.Gender),
		DateOfBirth:    student.DateOfBirth,
		Email:          student.Email,
		Phone:          student.Phone,
		Address:        student.Address,
		ClassRoomID:    student.ClassRoomID,
		EnrollmentDate: student.EnrollmentDate,
	}

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRosterConflict.WrapMessage("student email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClassRoomNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.ID = studentM.ID

	return nil
}

// FindStudentsByClassRoom returns a classroom's students ordered by last name then first name.
func (repo *schoolRepository) FindStudentsByClassRoom(ctx context.Context, classRoomID uuid.UUID) ([]*entity.Student, error) {
	var studentMs []model.StudentModel
	err := repo.db.WithContext(ctx).
		Where("class_room_id = ?", classRoomID).
		Order("last_name, first_name").
		Find(&studentMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	students := make([]*entity.Student, 0, len(studentMs))
	for i := range studentMs {
		students = append(students, toStudentDomain(&studentMs[i]))
	}

	return students, nil
}

// FindStudentByID retrieves a single student by their unique ID.
func (repo *schoolRepository) FindStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel
	err := repo.db.WithContext(ctx).First(&studentM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return toStudentDomain(&studentM), nil
}

// DeleteStudent removes a student. Attendance and marks cascade in the database.
func (repo *schoolRepository) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StudentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// --- Attendance and marks ---

// CreateAttendance records one student's presence on one date.
func (repo *schoolRepository) CreateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	attendanceM := &model.AttendanceModel{
		ID:        attendance.ID,
		StudentID: attendance.StudentID,
		Date:      attendance.Date,
		Status:    string(attendance.Status),
	}

	if err := repo.db.WithContext(ctx).Create(attendanceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStudentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attendance record")
	}

	attendance.ID = attendanceM.ID

	return nil
}

// FindAttendanceByStudent returns a student's attendance records, most recent date first.
func (repo *schoolRepository) FindAttendanceByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Attendance, error) {
	var attendanceMs []model.AttendanceModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&attendanceMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list attendance records")
	}

	records := make([]*entity.Attendance, 0, len(attendanceMs))
	for i := range attendanceMs {
		records = append(records, toAttendanceDomain(&attendanceMs[i]))
	}

	return records, nil
}

// CreateMark records one student's exam score in one subject.
func (repo *schoolRepository) CreateMark(ctx context.Context, mark *entity.Mark) error {
	markM := &model.MarkModel{
		ID:            mark.ID,
		StudentID:     mark.StudentID,
		SubjectID:     mark.SubjectID,
		MarksObtained: mark.MarksObtained,
		TotalMarks:    mark.TotalMarks,
		ExamDate:      mark.ExamDate,
	}

	if err := repo.db.WithContext(ctx).Create(markM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStudentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mark")
	}

	mark.ID = markM.ID

	return nil
}

// FindMarksByStudent returns a student's marks, most recent exam first.
func (repo *schoolRepository) FindMarksByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Mark, error) {
	var markMs []model.MarkModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("exam_date DESC").
		Find(&markMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list marks")
	}

	marks := make([]*entity.Mark, 0, len(markMs))
	for i := range markMs {
		marks = append(marks, toMarkDomain(&markMs[i]))
	}

	return marks, nil
}

// --- Mapper Functions ---

func toClassRoomDomain(data *model.ClassRoomModel) *entity.ClassRoom {
	return &entity.ClassRoom{
		ID:      data.ID,
		Name:    data.Name,
		Section: data.Section,
	}
}

func toSubjectDomain(data *model.SubjectModel) *entity.Subject {
	return &entity.Subject{
		ID:          data.ID,
		Name:        data.Name,
		Code:        data.Code,
		ClassRoomID: data.ClassRoomID,
	}
}

func toTeacherDomain(data *model.TeacherModel) *entity.Teacher {
	return &entity.Teacher{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		SubjectID: data.SubjectID,
		HireDate:  data.HireDate,
	}
}

func toStudentDomain(data *model.StudentModel) *entity.Student {
	return &entity.Student{
		ID:             data.ID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Gender:         entity.Gender(data.Gender),
		DateOfBirth:    data.DateOfBirth,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
		ClassRoomID:    data.ClassRoomID,
		EnrollmentDate: data.EnrollmentDate,
	}
}

func toAttendanceDomain(data *model.AttendanceModel) *entity.Attendance {
	return &entity.Attendance{
		ID:        data.ID,
		StudentID: data.StudentID,
		Date:      data.Date,
		Status:    entity.AttendanceStatus(data.Status),
	}
}

func toMarkDomain(data *model.MarkModel) *entity.Mark {
	return &entity.Mark{
		ID:            data.ID,
		StudentID:     data.StudentID,
		SubjectID:     data.SubjectID,
		MarksObtained: data.MarksObtained,
		TotalMarks:    data.TotalMarks,
		ExamDate:      data.ExamDate,
	}
}
