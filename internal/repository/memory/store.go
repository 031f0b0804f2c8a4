// Package memory is the in-process implementation of the storage
// collaborator, used for demo mode and tests. It is interchangeable with the
// postgres implementation behind the same repository interfaces.
package memory

import (
	"sync"
	"time"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type Store struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	profiles    map[string]domain.Profile // keyed by profile id
	locations   map[string]domain.Location
	connections map[string]domain.Connection
	messages    map[string][]domain.Message // keyed by connection id
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]domain.User),
		profiles:    make(map[string]domain.Profile),
		locations:   make(map[string]domain.Location),
		connections: make(map[string]domain.Connection),
		messages:    make(map[string][]domain.Message),
	}
}

func (s *Store) Users() repository.UserRepository             { return &userRepository{s} }
func (s *Store) Profiles() repository.ProfileRepository       { return &profileRepository{s} }
func (s *Store) Locations() repository.LocationRepository     { return &locationRepository{s} }
func (s *Store) Connections() repository.ConnectionRepository { return &connectionRepository{s} }
func (s *Store) Messages() repository.MessageRepository       { return &messageRepository{s} }

func now() time.Time { return time.Now().UTC() }
