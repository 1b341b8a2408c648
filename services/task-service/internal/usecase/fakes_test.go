package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
	"github.com/vasapolrittideah/task-tracker-api/shared/provider"
)

// fakeUserRepository is an in-memory repository.UserRepository.
type fakeUserRepository struct {
	mu        sync.Mutex
	users     map[string]*model.User
	upserts   int
	upsertErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUserRepository)(nil)

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*model.User{}}
}

func (f *fakeUserRepository) UpsertUser(_ context.Context, params repository.UpsertUserParams) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.upserts++
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}

	now := time.Now().UTC()
	user, ok := f.users[params.ID]
	if !ok {
		user = &model.User{ID: params.ID, CreatedAt: now}
		f.users[params.ID] = user
	}
	user.Email = params.Email
	user.Name = params.Name
	user.Picture = params.Picture
	user.UpdatedAt = now

	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := *user
	return &copied, nil
}

// fakeVerifier accepts a fixed set of tokens for a fixed audience.
type fakeVerifier struct {
	audience   string
	identities map[string]*provider.GoogleIdentity
	err        error
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken, audience string) (*provider.GoogleIdentity, error) {
	if audience == "" {
		return nil, provider.ErrMissingAudience
	}
	if f.err != nil {
		return nil, f.err
	}
	if audience != f.audience {
		return nil, errors.Join(provider.ErrInvalidIDToken, errors.New("audience mismatch"))
	}
	identity, ok := f.identities[idToken]
	if !ok {
		return nil, errors.Join(provider.ErrInvalidIDToken, errors.New("token expired"))
	}
	return identity, nil
}

// fakeTaskListRepository is an in-memory repository.TaskListRepository.
type fakeTaskListRepository struct {
	mu    sync.Mutex
	lists map[string]*model.TaskList
	err   error
}

func newFakeTaskListRepository() *fakeTaskListRepository {
	return &fakeTaskListRepository{lists: map[string]*model.TaskList{}}
}

func (f *fakeTaskListRepository) SaveTaskList(_ context.Context, userID string, tasks []any) (*model.TaskList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	if tasks == nil {
		tasks = []any{}
	}
	list := &model.TaskList{UserID: userID, Tasks: tasks, UpdatedAt: time.Now().UTC()}
	f.lists[userID] = list

	copied := *list
	return &copied, nil
}

func (f *fakeTaskListRepository) GetTaskList(_ context.Context, userID string) (*model.TaskList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	list, ok := f.lists[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := *list
	return &copied, nil
}

// fakeStatusCheckRepository is an in-memory repository.StatusCheckRepository.
type fakeStatusCheckRepository struct {
	checks    []*model.StatusCheck
	lastLimit int64
	err       error
}

func (f *fakeStatusCheckRepository) CreateStatusCheck(_ context.Context, check *model.StatusCheck) (*model.StatusCheck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.checks = append(f.checks, check)
	return check, nil
}

func (f *fakeStatusCheckRepository) ListStatusChecks(_ context.Context, limit int64) ([]*model.StatusCheck, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && int64(len(f.checks)) > limit {
		return f.checks[:limit], nil
	}
	return f.checks, nil
}

func strPtr(s string) *string {
	return &s
}
