// Package testutil holds in-memory fakes shared by handler, middleware and
// router tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/murmurlabs/murmur/internal/models"
)

// FakeUserStore is an in-memory models.UserStore preserving insertion order.
type FakeUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{}
}

func (s *FakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return models.ErrDuplicateEmail
		}
	}
	user.ID = uuid.New()
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *FakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FakeUserStore) UpdateProfilePic(_ context.Context, id uuid.UUID, url string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.ProfilePic = url
			clone := *u
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FakeUserStore) ListOthers(_ context.Context, excludeID uuid.UUID) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.User
	for _, u := range s.users {
		if u.ID != excludeID {
			out = append(out, *u)
		}
	}
	return out, nil
}

// Count reports how many records exist.
func (s *FakeUserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// FakeUploader returns a fixed URL or a configured failure.
type FakeUploader struct {
	URL string
	Err error
}

func (u *FakeUploader) Upload(_ context.Context, dataURI string) (string, error) {
	if u.Err != nil {
		return "", u.Err
	}
	if dataURI == "" {
		return "", errors.New("empty payload")
	}
	return u.URL, nil
}
