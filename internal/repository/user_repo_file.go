package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"sync"

	"tripma/internal/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create assigns the user an id and persists it. A user with the same
	// email already present is rejected with ErrUserExists.
	Create(ctx context.Context, user *domain.User) error
}

// FileUserRepository keeps accounts as a flat JSON array on disk.
// Missing or unparseable reads as empty;
// writes replace the file under the repository mutex.
type FileUserRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileUserRepository(path string) *FileUserRepository {
	return &FileUserRepository{path: path}
}

func (r *FileUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.load() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *FileUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	for _, u := range users {
		if u.Email == user.Email {
			return ErrUserExists
		}
	}
	user.ID = strconv.Itoa(len(users) + 1)
	users = append(users, *user)

	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0644)
}

func (r *FileUserRepository) load() []domain.User {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil
	}
	return users
}

var _ UserRepository = (*FileUserRepository)(nil)
