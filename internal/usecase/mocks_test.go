package usecase

import (
	"context"
	"encoding/json"
	"time"

	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]repository.User
	err   error
}

func (m mockUserRepo) CreateUser(context.Context, repository.User) error { return m.err }
func (m mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}
func (m mockUserRepo) GetUserByEmail(context.Context, string) (repository.User, error) {
	return repository.User{}, repository.ErrUserNotFound
}
func (m mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m mockUserRepo) UpdateProfile(_ context.Context, u repository.User) (repository.User, error) {
	return u, m.err
}
func (m mockUserRepo) ListUsersExcept(_ context.Context, id uuid.UUID) ([]repository.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.User, 0, len(m.users))
	for uid, u := range m.users {
		if uid != id {
			out = append(out, u)
		}
	}
	return out, nil
}

type mockSkillRepo struct {
	byUser map[uuid.UUID][]repository.UserSkill
	err    error
}

func (m mockSkillRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byUser[userID], nil
}
func (m mockSkillRepo) ListByUsers(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]repository.UserSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID][]repository.UserSkill, len(userIDs))
	for _, id := range userIDs {
		out[id] = m.byUser[id]
	}
	return out, nil
}
func (m mockSkillRepo) Create(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	return us, m.err
}
func (m mockSkillRepo) Update(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	return us, m.err
}
func (m mockSkillRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return m.err }

type mockExchangeRepo struct {
	byID       map[uuid.UUID]repository.ExchangeRequest
	pending    bool
	insertErr  error
	hasPendErr error
	decideErr  error
	inserted   []repository.ExchangeRequest
	sent       []repository.ExchangeListEntry
	received   []repository.ExchangeListEntry
}

func (m *mockExchangeRepo) Insert(_ context.Context, req repository.ExchangeRequest) (repository.ExchangeRequest, error) {
	if m.insertErr != nil {
		return repository.ExchangeRequest{}, m.insertErr
	}
	req.Status = repository.ExchangeStatusPending
	req.CreatedAt = time.Now().UTC()
	m.inserted = append(m.inserted, req)
	return req, nil
}
func (m *mockExchangeRepo) FindByID(_ context.Context, id uuid.UUID) (repository.ExchangeRequest, error) {
	req, ok := m.byID[id]
	if !ok {
		return repository.ExchangeRequest{}, repository.ErrExchangeNotFound
	}
	return req, nil
}
func (m *mockExchangeRepo) HasPending(context.Context, uuid.UUID, uuid.UUID, string, string) (bool, error) {
	return m.pending, m.hasPendErr
}
func (m *mockExchangeRepo) DecideIfPending(_ context.Context, id uuid.UUID, status string) (repository.ExchangeRequest, error) {
	if m.decideErr != nil {
		return repository.ExchangeRequest{}, m.decideErr
	}
	req, ok := m.byID[id]
	if !ok {
		return repository.ExchangeRequest{}, repository.ErrExchangeNotFound
	}
	if req.Status != repository.ExchangeStatusPending {
		return repository.ExchangeRequest{}, repository.ErrAlreadyDecided
	}
	now := time.Now().UTC()
	req.Status = status
	req.RespondedAt = &now
	m.byID[id] = req
	return req, nil
}
func (m *mockExchangeRepo) ListBySender(context.Context, uuid.UUID) ([]repository.ExchangeListEntry, error) {
	return m.sent, nil
}
func (m *mockExchangeRepo) ListByReceiver(context.Context, uuid.UUID) ([]repository.ExchangeListEntry, error) {
	return m.received, nil
}

type mockMessageRepo struct {
	items []repository.Message
	err   error
}

func (m *mockMessageRepo) Insert(_ context.Context, msg repository.Message) (repository.Message, error) {
	if m.err != nil {
		return repository.Message{}, m.err
	}
	msg.CreatedAt = time.Now().UTC()
	m.items = append(m.items, msg)
	return msg, nil
}
func (m *mockMessageRepo) ListByExchange(context.Context, uuid.UUID) ([]repository.Message, error) {
	return m.items, m.err
}

// recorderNotifier captures notifications synchronously so tests can
// assert on side effects without racing a goroutine.
type recorderNotifier struct {
	calls []recordedNotification
}

type recordedNotification struct {
	UserID    uuid.UUID
	Kind      string
	Message   string
	RelatedID *uuid.UUID
}

func (r *recorderNotifier) Notify(userID uuid.UUID, kind, message string, relatedID *uuid.UUID) {
	r.calls = append(r.calls, recordedNotification{UserID: userID, Kind: kind, Message: message, RelatedID: relatedID})
}

type mockMatchCache struct {
	store   map[string][]byte
	getHits int
	sets    int
	deletes []string
}

func (m *mockMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := m.store[key]
	if !ok {
		return false, nil
	}
	m.getHits++
	return true, json.Unmarshal(raw, out)
}
func (m *mockMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = raw
	m.sets++
	return nil
}
func (m *mockMatchCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	m.deletes = append(m.deletes, key)
	return nil
}
