package models

import (
	"time"
)

// Alumni defines an alumni directory entry based on the 'alumni' table
type Alumni struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	Batch              *string `json:"batch,omitempty" db:"batch"`
	CurrentDesignation *string `json:"currentDesignation,omitempty" db:"current_designation"`
	Company            *string `json:"company,omitempty" db:"company"`
	LinkedinProfile    *string `json:"linkedinProfile,omitempty" db:"linkedin_profile"`
	Email              *string `json:"email,omitempty" db:"email"`
}

// Faculty defines a faculty directory entry based on the 'faculty' table
type Faculty struct {
	ID          int64               `json:"id" db:"id"`
	Name        string              `json:"name" db:"name"`
	Designation *string             `json:"designation,omitempty" db:"designation"`
	Department  *string             `json:"department,omitempty" db:"department"`
	Subjects    *string             `json:"subjects,omitempty" db:"subjects"` // Comma-separated subject list
	Photo       *string             `json:"photo,omitempty" db:"photo"`
	Bio         *string             `json:"bio,omitempty" db:"bio"`
	JoinedDate  *time.Time          `json:"joinedDate,omitempty" db:"joined_date"`
	Office      *string             `json:"office,omitempty" db:"office"`
	Mobile      *string             `json:"mobile,omitempty" db:"mobile"`
	Email       *string             `json:"email,omitempty" db:"email"`
	Linkedin    *string             `json:"linkedin,omitempty" db:"linkedin"`
	Education   []*FacultyEducation `json:"education,omitempty"` // Relation, no db tag
	Timetable   []*FacultyTimetable `json:"timetable,omitempty"` // Relation, no db tag
}

// FacultyEducation defines a degree held by a faculty member
type FacultyEducation struct {
	ID        int64  `json:"id" db:"id"`
	FacultyID int64  `json:"facultyId" db:"faculty_id"`
	Degree    string `json:"degree" db:"degree"`
	University string `json:"university" db:"university"`
	Year      int    `json:"year" db:"year"`
}

// FacultyTimetable defines a weekly teaching slot of a faculty member
type FacultyTimetable struct {
	ID        int64  `json:"id" db:"id"`
	FacultyID int64  `json:"facultyId" db:"faculty_id"`
	Day       string `json:"day" db:"day"`
	Time      string `json:"time" db:"time"`
	Course    string `json:"course" db:"course"`
	Location  string `json:"location" db:"location"`
}
