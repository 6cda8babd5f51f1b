package model

import (
	"time"

	"github.com/google/uuid"
)

// The school roster tables are an independent entity graph; no table here
// references the recycling domain.

// ClassRoomModel mirrors the 'class_rooms' table.
type ClassRoomModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name    string    `gorm:"type:varchar(50);not null"`
	Section string    `gorm:"type:varchar(10)"`

	Subjects []SubjectModel `gorm:"foreignKey:ClassRoomID;constraint:OnDelete:CASCADE"`
	Students []StudentModel `gorm:"foreignKey:ClassRoomID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClassRoomModel) TableName() string {
	return "class_rooms"
}

// SubjectModel mirrors the 'subjects' table.
type SubjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Code        string    `gorm:"type:varchar(10);unique;not null"`
	ClassRoomID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}

// TeacherModel mirrors the 'teachers' table. SubjectID is cleared, not
// cascaded, when the subject goes away.
type TeacherModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName string     `gorm:"type:varchar(50);not null"`
	LastName  string     `gorm:"type:varchar(50);not null"`
	Email     string     `gorm:"type:varchar(255);unique;not null"`
	Phone     string     `gorm:"type:varchar(15)"`
	SubjectID *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL"`
	HireDate  time.Time  `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}

// StudentModel mirrors the 'students' table.
type StudentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName      string    `gorm:"type:varchar(50);not null"`
	LastName       string    `gorm:"type:varchar(50);not null"`
	Gender         string    `gorm:"type:varchar(1);not null"`
	DateOfBirth    time.Time `gorm:"type:date;not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Phone          string    `gorm:"type:varchar(15)"`
	Address        string    `gorm:"type:text"`
	ClassRoomID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EnrollmentDate time.Time `gorm:"type:date;not null"`

	Attendances []AttendanceModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Marks       []MarkModel       `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// AttendanceModel mirrors the 'attendances' table.
type AttendanceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	Status    string    `gorm:"type:varchar(1);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendances"
}

// MarkModel mirrors the 'marks' table.
type MarkModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SubjectID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MarksObtained float64   `gorm:"not null"`
	TotalMarks    float64   `gorm:"not null"`
	ExamDate      time.Time `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MarkModel) TableName() string {
	return "marks"
}
