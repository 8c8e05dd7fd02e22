package client

import (
	"context"
	"log"
	"sync"
)

// Notifier surfaces a transient, user-visible notification.
type Notifier func(message string)

// ChatStore caches the user list and the open conversation for a UI layer.
// The composition root owns it and passes it to consumers; it is never a
// package global. Racing actions resolve last-response-wins, no fencing.
type ChatStore struct {
	mu     sync.Mutex
	api    *Client
	notify Notifier

	messages          []Message
	users             []User
	selectedUser      *User
	isUsersLoading    bool
	isMessagesLoading bool
}

func NewChatStore(api *Client, notify Notifier) *ChatStore {
	if notify == nil {
		notify = func(string) {}
	}
	return &ChatStore{api: api, notify: notify}
}

// GetUsers refreshes the sidebar user list.
func (s *ChatStore) GetUsers(ctx context.Context) {
	s.mu.Lock()
	s.isUsersLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isUsersLoading = false
		s.mu.Unlock()
	}()

	users, err := s.api.GetSidebarUsers(ctx)
	if err != nil {
		log.Println("Error getting users:", err)
		s.notify(errorMessage(err))
		return
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
}

// GetMessages loads the conversation with the given user.
func (s *ChatStore) GetMessages(ctx context.Context, userID string) {
	s.mu.Lock()
	s.isMessagesLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isMessagesLoading = false
		s.mu.Unlock()
	}()

	messages, err := s.api.GetMessages(ctx, userID)
	if err != nil {
		log.Println("Error getting messages:", err)
		s.notify(errorMessage(err))
		return
	}

	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
}

func (s *ChatStore) SetSelectedUser(user *User) {
	s.mu.Lock()
	s.selectedUser = user
	s.mu.Unlock()
}

func (s *ChatStore) SelectedUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedUser
}

func (s *ChatStore) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *ChatStore) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

func (s *ChatStore) IsUsersLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isUsersLoading
}

func (s *ChatStore) IsMessagesLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isMessagesLoading
}

// errorMessage prefers the server's message string over transport detail.
func errorMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}
