package dto

import (
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// EventResponse represents a campus event
type EventResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	EventDate        time.Time `json:"eventDate"`
	Venue            *string   `json:"venue,omitempty"`
	RegistrationLink *string   `json:"registrationLink,omitempty"`
	IsHighlighted    bool      `json:"isHighlighted"`
	EventType        *string   `json:"eventType,omitempty"`
	HighlightImages  *string   `json:"highlightImages,omitempty"`
}

// NewEventResponse maps an event model to its response form
func NewEventResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		EventDate:        event.EventDate,
		Venue:            event.Venue,
		RegistrationLink: event.RegistrationLink,
		IsHighlighted:    event.IsHighlighted,
		EventType:        event.EventType,
		HighlightImages:  event.HighlightImages,
	}
}

// AlumniResponse represents an alumni directory entry
type AlumniResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Batch              *string `json:"batch,omitempty"`
	CurrentDesignation *string `json:"currentDesignation,omitempty"`
	Company            *string `json:"company,omitempty"`
	LinkedinProfile    *string `json:"linkedinProfile,omitempty"`
	Email              *string `json:"email,omitempty"`
}

// NewAlumniResponse maps an alumni model to its response form
func NewAlumniResponse(a *models.Alumni) *AlumniResponse {
	return &AlumniResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Batch:              a.Batch,
		CurrentDesignation: a.CurrentDesignation,
		Company:            a.Company,
		LinkedinProfile:    a.LinkedinProfile,
		Email:              a.Email,
	}
}

// FacultyResponse represents a faculty directory entry. The detail endpoint
// also fills Education and Timetable.
type FacultyResponse struct {
	ID          int64                      `json:"id"`
	Name        string                     `json:"name"`
	Designation *string                    `json:"designation,omitempty"`
	Department  *string                    `json:"department,omitempty"`
	Subjects    *string                    `json:"subjects,omitempty"`
	Photo       *string                    `json:"photo,omitempty"`
	Bio         *string                    `json:"bio,omitempty"`
	JoinedDate  *time.Time                 `json:"joinedDate,omitempty"`
	Office      *string                    `json:"office,omitempty"`
	Mobile      *string                    `json:"mobile,omitempty"`
	Email       *string                    `json:"email,omitempty"`
	Linkedin    *string                    `json:"linkedin,omitempty"`
	Education   []*FacultyEducationResponse `json:"education,omitempty"`
	Timetable   []*FacultyTimetableResponse `json:"timetable,omitempty"`
}

// FacultyEducationResponse represents a degree held by a faculty member
type FacultyEducationResponse struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Year       int    `json:"year"`
}

// FacultyTimetableResponse represents a weekly teaching slot
type FacultyTimetableResponse struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Course   string `json:"course"`
	Location string `json:"location"`
}

// NewFacultyResponse maps a faculty model to its response form
func NewFacultyResponse(f *models.Faculty) *FacultyResponse {
	resp := &FacultyResponse{
		ID:          f.ID,
		Name:        f.Name,
		Designation: f.Designation,
		Department:  f.Department,
		Subjects:    f.Subjects,
		Photo:       f.Photo,
		Bio:         f.Bio,
		JoinedDate:  f.JoinedDate,
		Office:      f.Office,
		Mobile:      f.Mobile,
		Email:       f.Email,
		Linkedin:    f.Linkedin,
	}
	for _, e := range f.Education {
		resp.Education = append(resp.Education, &FacultyEducationResponse{
			Degree:     e.Degree,
			University: e.University,
			Year:       e.Year,
		})
	}
	for _, t := range f.Timetable {
		resp.Timetable = append(resp.Timetable, &FacultyTimetableResponse{
			Day:      t.Day,
			Time:     t.Time,
			Course:   t.Course,
			Location: t.Location,
		})
	}
	return resp
}
