package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/anantsaxena14/campus-sphere/internal/pkg/auth"
)

// CreateDefaultData populates an empty database with sample campus data:
// a bus with its route and driver, events, directory entries, a club and a
// default admin account. It is idempotent and skips any table that already
// holds rows.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	seeders := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool) error
	}{
		{"users", seedUsers},
		{"buses", seedBusAndDriver},
		{"events", seedEvents},
		{"alumni", seedAlumni},
		{"faculty", seedFaculty},
		{"clubs", seedClubs},
		{"admins", seedAdmin},
	}

	for _, s := range seeders {
		if err := s.fn(ctx, pool); err != nil {
			return fmt.Errorf("seeding %s: %w", s.name, err)
		}
	}

	logger.Info().Msg("Default data verified")
	return nil
}

func tableIsEmpty(ctx context.Context, pool *pgxpool.Pool, table string) (bool, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "users")
	if err != nil || !empty {
		return err
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	users := []struct {
		name, email, course, branch, batch string
		year                               int
	}{
		{"John Doe", "john.doe@example.com", "B.Tech", "Computer Science", "2025", 3},
		{"Jane Smith", "jane.smith@example.com", "B.Tech", "Electrical", "2024", 4},
	}
	for _, u := range users {
		_, err := pool.Exec(ctx, `
			INSERT INTO users (name, email, password_hash, course, branch, batch, year)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			u.name, u.email, hash, u.course, u.branch, u.batch, u.year)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedBusAndDriver(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "buses")
	if err != nil || !empty {
		return err
	}

	var busID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO buses (bus_number, route_description, is_active)
		VALUES ($1, $2, TRUE) RETURNING id`,
		"UP16A 1234", "Main City Route").Scan(&busID)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword("driverpass")
	if err != nil {
		return err
	}

	var driverID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO drivers (name, password_hash, assigned_bus_id)
		VALUES ($1, $2, $3) RETURNING id`,
		"Amit Kumar", hash, busID).Scan(&driverID)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `UPDATE buses SET driver_id = $1 WHERE id = $2`, driverID, busID); err != nil {
		return err
	}

	stops := []struct {
		name     string
		order    int
		lat, lng float64
	}{
		{"Campus Gate", 1, 28.7041, 77.1025},
		{"City Center", 2, 28.6139, 77.2090},
		{"Railway Station", 3, 28.6439, 77.2290},
	}
	for _, s := range stops {
		_, err := pool.Exec(ctx, `
			INSERT INTO bus_stops (bus_id, stop_name, stop_order, lat, lng)
			VALUES ($1, $2, $3, $4, $5)`,
			busID, s.name, s.order, s.lat, s.lng)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "events")
	if err != nil || !empty {
		return err
	}

	now := time.Now().UTC()
	events := []struct {
		title, description, venue string
		date                      time.Time
		highlighted               bool
		eventType                 string
		images                    string
	}{
		{"Annual Tech Fest", "Where innovation meets inspiration",
			"Main Auditorium", now.Add(12*24*time.Hour + 10*time.Hour), true, "Cultural", ""},
		{"AI/ML Workshop", "Hands-on sessions on AI and Machine Learning.",
			"CSE Lab", now.Add(2 * 24 * time.Hour), false, "Workshop", ""},
		{"Startup Seminar", "Learn from successful entrepreneurs.",
			"Seminar Hall 1", now.Add(8 * 24 * time.Hour), false, "Seminar", ""},
		{"Hackathon 2023", "24 hours of non-stop coding.",
			"CSE Building", time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC), false, "", "/static/images/hackathon.jpg"},
		{"Annual Music Fest", "An electrifying night with amazing performances.",
			"Campus Ground", time.Date(2023, 8, 22, 0, 0, 0, 0, time.UTC), false, "", "/static/images/music_fest.jpg"},
	}
	for _, e := range events {
		_, err := pool.Exec(ctx, `
			INSERT INTO events (title, description, event_date, venue, is_highlighted, event_type, highlight_images)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))`,
			e.title, e.description, e.date, e.venue, e.highlighted, e.eventType, e.images)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAlumni(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "alumni")
	if err != nil || !empty {
		return err
	}

	alumni := []struct {
		name, batch, designation, company, email string
	}{
		{"Arjun Sharma", "2020", "Software Engineer", "Google", "arjun.s@alumni.edu"},
		{"Priya Singh", "2018", "Product Manager", "Microsoft", "priya.s@alumni.edu"},
	}
	for _, a := range alumni {
		_, err := pool.Exec(ctx, `
			INSERT INTO alumni (name, batch, current_designation, company, email)
			VALUES ($1, $2, $3, $4, $5)`,
			a.name, a.batch, a.designation, a.company, a.email)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedFaculty(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "faculty")
	if err != nil || !empty {
		return err
	}

	var ananyaID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO faculty (name, designation, department, subjects, photo, bio, joined_date, office, mobile, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		"Dr. Ananya Sharma", "Professor", "Computer Science",
		"Data Structures, Algorithms", "/static/images/faculty/ananya.jpg",
		"Dr. Ananya Sharma is a distinguished professor in the Department of Computer Science at the University of Innovatech. Her research focuses on artificial intelligence, machine learning, and data science. She has published over 50 peer-reviewed articles and has received numerous awards for her contributions to the field. Dr. Ananya is also an advocate for women in STEM and actively mentors students in her lab.",
		time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC), "Techville Hall 302", "(555) 123-4567",
		"ananya.s@example.edu").Scan(&ananyaID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO faculty (name, designation, department, subjects, photo, bio, joined_date, office, mobile, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		"Dr. Rohan Verma", "Professor", "Electrical",
		"Circuit Theory, Signals", "/static/images/faculty/rohan.jpg",
		"Dr. Verma is an expert in Electrical and Electronics Engineering with a focus on signal processing and telecommunications. He is known for his practical teaching approach and a passion for research that applies theoretical concepts to real-world problems.",
		time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC), "Electrical Dept. 201", "(555) 987-6543",
		"rohan.v@example.edu")
	if err != nil {
		return err
	}

	education := []struct {
		degree, university string
		year               int
	}{
		{"Ph.D. in Computer Science", "University of Innovatech", 2015},
		{"M.S. in Computer Science", "University of Techville", 2012},
		{"B.S. in Computer Science", "University of Techville", 2010},
	}
	for _, e := range education {
		_, err := pool.Exec(ctx, `
			INSERT INTO faculty_education (faculty_id, degree, university, year)
			VALUES ($1, $2, $3, $4)`,
			ananyaID, e.degree, e.university, e.year)
		if err != nil {
			return err
		}
	}

	timetable := []struct {
		day, slot, course, location string
	}{
		{"Monday", "10:00 AM - 11:30 AM", "Introduction to AI", "Room 201"},
		{"Tuesday", "1:00 PM - 2:30 PM", "Machine Learning", "Room 202"},
		{"Wednesday", "10:00 AM - 11:30 AM", "Introduction to AI", "Room 201"},
		{"Thursday", "1:00 PM - 2:30 PM", "Machine Learning", "Room 202"},
		{"Friday", "2:00 PM - 3:00 PM", "Office Hours", "Room 305"},
	}
	for _, t := range timetable {
		_, err := pool.Exec(ctx, `
			INSERT INTO faculty_timetable (faculty_id, day, time, course, location)
			VALUES ($1, $2, $3, $4, $5)`,
			ananyaID, t.day, t.slot, t.course, t.location)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedClubs(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "clubs")
	if err != nil || !empty {
		return err
	}

	var secretaryID *int64
	var id int64
	err = pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "jane.smith@example.com").Scan(&id)
	if err == nil {
		secretaryID = &id
	}

	var clubID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO clubs (name, description, secretary_id)
		VALUES ($1, $2, $3) RETURNING id`,
		"Tech Innovators", "A club for all things tech.", secretaryID).Scan(&clubID)
	if err != nil {
		return err
	}

	var memberID int64
	if err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "john.doe@example.com").Scan(&memberID); err == nil {
		_, err = pool.Exec(ctx, `
			INSERT INTO club_memberships (user_id, club_id, is_verified, verified_by)
			VALUES ($1, $2, TRUE, $3)`,
			memberID, clubID, secretaryID)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO community_posts (user_id, content, post_type)
			VALUES ($1, $2, $3)`,
			memberID, "Welcome to the community!", "Announcement")
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableIsEmpty(ctx, pool, "admins")
	if err != nil || !empty {
		return err
	}

	hash, err := auth.HashPassword("adminpass")
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO admins (username, password_hash, role)
		VALUES ($1, $2, $3)`,
		"superadmin", hash, "Super Admin")
	return err
}
