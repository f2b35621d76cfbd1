package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
)

// DirectoryRepository handles database operations for the alumni and faculty
// directories
type DirectoryRepository struct {
	db *pgxpool.Pool
}

// NewDirectoryRepository creates a new DirectoryRepository
func NewDirectoryRepository(db *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// GetAllAlumni retrieves all alumni ordered by batch, newest batches first
func (r *DirectoryRepository) GetAllAlumni(ctx context.Context) ([]*models.Alumni, error) {
	query := `
		SELECT id, name, batch, current_designation, company, linkedin_profile, email
		FROM alumni
		ORDER BY batch DESC, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	var alumni []*models.Alumni
	for rows.Next() {
		var a models.Alumni
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Batch,
			&a.CurrentDesignation,
			&a.Company,
			&a.LinkedinProfile,
			&a.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning alumni: %w", err)
		}
		alumni = append(alumni, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alumni: %w", err)
	}
	return alumni, nil
}

// GetAllFaculty retrieves all faculty members without their relations
func (r *DirectoryRepository) GetAllFaculty(ctx context.Context) ([]*models.Faculty, error) {
	query := `
		SELECT id, name, designation, department, subjects, photo, bio, joined_date,
		       office, mobile, email, linkedin
		FROM faculty
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}
	defer rows.Close()

	var faculty []*models.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty: %w", err)
		}
		faculty = append(faculty, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty: %w", err)
	}
	return faculty, nil
}

// GetFacultyByID retrieves a faculty member with education and timetable
func (r *DirectoryRepository) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query := `
		SELECT id, name, designation, department, subjects, photo, bio, joined_date,
		       office, mobile, email, linkedin
		FROM faculty
		WHERE id = $1
	`
	f, err := scanFaculty(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	if f.Education, err = r.getFacultyEducation(ctx, id); err != nil {
		return nil, err
	}
	if f.Timetable, err = r.getFacultyTimetable(ctx, id); err != nil {
		return nil, err
	}
	return f, nil
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Designation,
		&f.Department,
		&f.Subjects,
		&f.Photo,
		&f.Bio,
		&f.JoinedDate,
		&f.Office,
		&f.Mobile,
		&f.Email,
		&f.Linkedin,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DirectoryRepository) getFacultyEducation(ctx context.Context, facultyID int64) ([]*models.FacultyEducation, error) {
	query := `
		SELECT id, faculty_id, degree, university, year
		FROM faculty_education
		WHERE faculty_id = $1
		ORDER BY year DESC
	`
	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty education: %w", err)
	}
	defer rows.Close()

	var education []*models.FacultyEducation
	for rows.Next() {
		var e models.FacultyEducation
		if err := rows.Scan(&e.ID, &e.FacultyID, &e.Degree, &e.University, &e.Year); err != nil {
			return nil, fmt.Errorf("error scanning faculty education: %w", err)
		}
		education = append(education, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty education: %w", err)
	}
	return education, nil
}

func (r *DirectoryRepository) getFacultyTimetable(ctx context.Context, facultyID int64) ([]*models.FacultyTimetable, error) {
	query := `
		SELECT id, faculty_id, day, time, course, location
		FROM faculty_timetable
		WHERE faculty_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty timetable: %w", err)
	}
	defer rows.Close()

	var timetable []*models.FacultyTimetable
	for rows.Next() {
		var t models.FacultyTimetable
		if err := rows.Scan(&t.ID, &t.FacultyID, &t.Day, &t.Time, &t.Course, &t.Location); err != nil {
			return nil, fmt.Errorf("error scanning faculty timetable: %w", err)
		}
		timetable = append(timetable, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty timetable: %w", err)
	}
	return timetable, nil
}
