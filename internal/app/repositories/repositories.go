package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	SessionRepository   *SessionRepository
	BusRepository       *BusRepository
	DriverRepository    *DriverRepository
	ResourceRepository  *ResourceRepository
	EventRepository     *EventRepository
	DirectoryRepository *DirectoryRepository
	ClubRepository      *ClubRepository
	PostRepository      *PostRepository
	AdminRepository     *AdminRepository
	ChatRepository      *ChatRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		SessionRepository:   NewSessionRepository(db),
		BusRepository:       NewBusRepository(db),
		DriverRepository:    NewDriverRepository(db),
		ResourceRepository:  NewResourceRepository(db),
		EventRepository:     NewEventRepository(db),
		DirectoryRepository: NewDirectoryRepository(db),
		ClubRepository:      NewClubRepository(db),
		PostRepository:      NewPostRepository(db),
		AdminRepository:     NewAdminRepository(db),
		ChatRepository:      NewChatRepository(db),
	}
}
