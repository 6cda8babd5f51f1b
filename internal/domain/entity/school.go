// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// The school roster is a self-contained entity graph with no relationship to
// the recycling domain. It is served as a plain CRUD API.

// ClassRoom is a class or grade, optionally split into sections.
type ClassRoom struct {
	ID      uuid.UUID
	Name    string // e.g., "Grade 8".
	Section string // e.g., "A"; may be empty.
}

// Subject is a course taught to one classroom. The code is unique school-wide.
type Subject struct {
	ID          uuid.UUID
	Name        string
	Code        string // Unique subject code, e.g., "MATH8".
	ClassRoomID uuid.UUID
}

// Teacher teaches at most one subject; the link is optional and survives
// subject deletion by being cleared rather than cascading.
type Teacher struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string // Unique.
	Phone     string
	SubjectID *uuid.UUID // Nil when the teacher is unassigned.
	HireDate  time.Time
}

// Gender classifies a student record.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Student is enrolled in exactly one classroom.
type Student struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Gender         Gender
	DateOfBirth    time.Time
	Email          string // Unique.
	Phone          string
	Address        string
	ClassRoomID    uuid.UUID
	EnrollmentDate time.Time
}

// AttendanceStatus is the per-day presence marker for a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "P"
	AttendanceAbsent  AttendanceStatus = "A"
	AttendanceLate    AttendanceStatus = "L"
)

// IsValid checks if the AttendanceStatus is a valid value.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// Attendance records one student's presence on one date.
type Attendance struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	Date      time.Time
	Status    AttendanceStatus
}

// Mark records the score one student obtained in one subject's exam.
type Mark struct {
	ID            uuid.UUID
	StudentID     uuid.UUID
	SubjectID     uuid.UUID
	MarksObtained float64
	TotalMarks    float64
	ExamDate      time.Time
}
