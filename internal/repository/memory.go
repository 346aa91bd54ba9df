package repository

import (
	"sync"
	"time"

	"github.com/portal-labs/application-portal-api/internal/models"
)

// MemoryStore holds users and applications in process memory. A single
// mutex serializes every mutation so that uniqueness and cascade
// invariants hold under concurrent access. IDs are monotonic and never
// reused. Both repository interfaces are served as views over the same
// store so the user-delete cascade stays inside one critical section.
type MemoryStore struct {
	mu            sync.Mutex
	users         map[uint64]models.User
	applications  map[uint64]models.Application
	userID        uint64
	applicationID uint64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[uint64]models.User),
		applications: make(map[uint64]models.Application),
	}
}

// Users returns the UserRepository view of the store.
func (s *MemoryStore) Users() UserRepository {
	return &memoryUserRepository{store: s}
}

// Applications returns the ApplicationRepository view of the store.
func (s *MemoryStore) Applications() ApplicationRepository {
	return &memoryApplicationRepository{store: s}
}

type memoryUserRepository struct {
	store *MemoryStore
}

var _ UserRepository = (*memoryUserRepository)(nil)

func (r *memoryUserRepository) Create(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrDuplicateUsername
		}
	}

	s.userID++
	user.ID = s.userID
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(id uint64) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByUsername(username string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) List() ([]models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *memoryUserRepository) Update(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

// Delete removes the user and cascades to their applications within the
// same critical section.
func (r *memoryUserRepository) Delete(id uint64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)

	for appID, app := range s.applications {
		if app.UserID == id {
			delete(s.applications, appID)
		}
	}
	return nil
}

type memoryApplicationRepository struct {
	store *MemoryStore
}

var _ ApplicationRepository = (*memoryApplicationRepository)(nil)

func (r *memoryApplicationRepository) Create(app *models.Application) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applicationID++
	app.ID = s.applicationID
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	now := time.Now()
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}
	app.UpdatedAt = now

	s.applications[app.ID] = *app
	return nil
}

func (r *memoryApplicationRepository) FindByID(id uint64) (*models.Application, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (r *memoryApplicationRepository) List() ([]models.Application, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := make([]models.Application, 0, len(s.applications))
	for _, app := range s.applications {
		apps = append(apps, app)
	}
	return apps, nil
}

func (r *memoryApplicationRepository) ListByUserID(userID uint64) ([]models.Application, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	apps := make([]models.Application, 0)
	for _, app := range s.applications {
		if app.UserID == userID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (r *memoryApplicationRepository) Update(app *models.Application) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[app.ID]; !ok {
		return ErrNotFound
	}
	app.UpdatedAt = time.Now()
	s.applications[app.ID] = *app
	return nil
}

func (r *memoryApplicationRepository) Delete(id uint64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[id]; !ok {
		return ErrNotFound
	}
	delete(s.applications, id)
	return nil
}
