package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
	"github.com/vasapolrittideah/task-tracker-api/shared/provider"
)

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

var _ repository.UserRepository = (*memoryUserRepository)(nil)

func (m *memoryUserRepository) UpsertUser(_ context.Context, params repository.UpsertUserParams) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	user, ok := m.users[params.ID]
	if !ok {
		user = &model.User{ID: params.ID, CreatedAt: now}
		m.users[params.ID] = user
	}
	user.Email = params.Email
	user.Name = params.Name
	user.Picture = params.Picture
	user.UpdatedAt = now

	copied := *user
	return &copied, nil
}

func (m *memoryUserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (m *memoryUserRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memoryUserRepository) delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

type memoryTaskListRepository struct {
	mu    sync.Mutex
	lists map[string]*model.TaskList
}

var _ repository.TaskListRepository = (*memoryTaskListRepository)(nil)

func (m *memoryTaskListRepository) SaveTaskList(_ context.Context, userID string, tasks []any) (*model.TaskList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tasks == nil {
		tasks = []any{}
	}
	list := &model.TaskList{UserID: userID, Tasks: tasks, UpdatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	m.lists[userID] = list

	copied := *list
	return &copied, nil
}

func (m *memoryTaskListRepository) GetTaskList(_ context.Context, userID string) (*model.TaskList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, ok := m.lists[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *list
	return &copied, nil
}

type memoryStatusCheckRepository struct {
	mu     sync.Mutex
	checks []*model.StatusCheck
}

var _ repository.StatusCheckRepository = (*memoryStatusCheckRepository)(nil)

func (m *memoryStatusCheckRepository) CreateStatusCheck(_ context.Context, check *model.StatusCheck) (*model.StatusCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, check)
	return check, nil
}

func (m *memoryStatusCheckRepository) ListStatusChecks(_ context.Context, limit int64) ([]*model.StatusCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.StatusCheck, 0, len(m.checks))
	for i, c := range m.checks {
		if int64(i) >= limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

// fakeVerifier accepts tokens of the form listed in identities.
type fakeVerifier struct {
	audience   string
	identities map[string]*provider.GoogleIdentity
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken, audience string) (*provider.GoogleIdentity, error) {
	if audience != f.audience {
		return nil, errors.Join(provider.ErrInvalidIDToken, errors.New("audience provided does not match aud claim in the JWT"))
	}
	identity, ok := f.identities[idToken]
	if !ok {
		return nil, errors.Join(provider.ErrInvalidIDToken, errors.New("invalid token"))
	}
	return identity, nil
}

type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Ping(context.Context, *readpref.ReadPref) error {
	return f.err
}

func strPtr(s string) *string {
	return &s
}
