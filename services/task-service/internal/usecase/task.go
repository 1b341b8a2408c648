package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
)

// TaskUsecase loads and replaces a user's task list.
type TaskUsecase interface {
	// GetTasks returns an empty list with a zero UpdatedAt when nothing was saved yet.
	GetTasks(ctx context.Context, userID string) (*model.TaskList, error)

	// SaveTasks replaces the user's list. Concurrent saves race; the last write wins.
	SaveTasks(ctx context.Context, userID string, tasks []any) (*model.TaskList, error)
}

type taskUsecase struct {
	taskListRepo repository.TaskListRepository
}

func NewTaskUsecase(taskListRepo repository.TaskListRepository) TaskUsecase {
	return &taskUsecase{taskListRepo: taskListRepo}
}

func (u *taskUsecase) GetTasks(ctx context.Context, userID string) (*model.TaskList, error) {
	list, err := u.taskListRepo.GetTaskList(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.TaskList{UserID: userID, Tasks: []any{}}, nil
		}
		return nil, fmt.Errorf("get task list: %w", err)
	}

	if list.Tasks == nil {
		list.Tasks = []any{}
	}

	return list, nil
}

func (u *taskUsecase) SaveTasks(ctx context.Context, userID string, tasks []any) (*model.TaskList, error) {
	list, err := u.taskListRepo.SaveTaskList(ctx, userID, tasks)
	if err != nil {
		return nil, fmt.Errorf("save task list: %w", err)
	}

	return list, nil
}
