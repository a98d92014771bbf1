package database

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskstore-api/domain/models"
	"taskstore-api/domain/repositories"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedTask(t *testing.T, db *gorm.DB, task *models.Task) *models.Task {
	t.Helper()
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusOpen
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func allFilter() repositories.TaskFilter {
	return repositories.TaskFilter{ShowCompleted: true, Limit: 200}
}

func TestTaskRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &models.Task{
		Title:     "Write report",
		Priority:  models.PriorityHigh,
		Status:    models.StatusOpen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.ID == 0 {
		t.Error("expected an assigned id after create")
	}

	var found models.Task
	if err := db.First(&found, task.ID).Error; err != nil {
		t.Fatalf("failed to find created task: %v", err)
	}
	if found.Title != task.Title {
		t.Errorf("expected title %q, got %q", task.Title, found.Title)
	}
}

func TestTaskRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := seedTask(t, db, &models.Task{Title: "Lookup me"})

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.GetByID(ctx, task.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if found.Title != task.Title {
			t.Errorf("expected title %q, got %q", task.Title, found.Title)
		}
	})

	t.Run("non-existent task", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		if err != repositories.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestTaskRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seedTask(t, db, &models.Task{
		Title: "Buy milk", Description: "from the corner shop",
		Priority: models.PriorityHigh, CreatedAt: base,
	})
	seedTask(t, db, &models.Task{
		Title: "Ship release", Description: "cut the final Build",
		Status: models.StatusInProgress, CreatedAt: base.Add(time.Minute),
	})
	seedTask(t, db, &models.Task{
		Title: "Archive logs", Status: models.StatusDone, Completed: true,
		CreatedAt: base.Add(2 * time.Minute),
	})

	t.Run("ordered newest first", func(t *testing.T) {
		tasks, err := repo.List(ctx, allFilter())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(tasks))
		}
		if tasks[0].Title != "Archive logs" || tasks[2].Title != "Buy milk" {
			t.Errorf("unexpected order: %q, %q, %q", tasks[0].Title, tasks[1].Title, tasks[2].Title)
		}
	})

	t.Run("free text matches title case-insensitively", func(t *testing.T) {
		f := allFilter()
		f.Query = "MILK"
		tasks, err := repo.List(ctx, f)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
			t.Errorf("expected only the milk task, got %d results", len(tasks))
		}
	})

	t.Run("free text matches description", func(t *testing.T) {
		f := allFilter()
		f.Query = "build"
		tasks, err := repo.List(ctx, f)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Ship release" {
			t.Errorf("expected only the release task, got %d results", len(tasks))
		}
	})

	t.Run("status exact match", func(t *testing.T) {
		f := allFilter()
		f.Status = models.StatusDone
		tasks, err := repo.List(ctx, f)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Archive logs" {
			t.Errorf("expected only the done task, got %d results", len(tasks))
		}
	})

	t.Run("priority exact match", func(t *testing.T) {
		f := allFilter()
		f.Priority = models.PriorityHigh
		tasks, err := repo.List(ctx, f)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
			t.Errorf("expected only the high priority task, got %d results", len(tasks))
		}
	})

	t.Run("exclude completed", func(t *testing.T) {
		f := allFilter()
		f.ShowCompleted = false
		tasks, err := repo.List(ctx, f)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for _, task := range tasks {
			if task.Completed {
				t.Errorf("completed task %q leaked through the filter", task.Title)
			}
		}
		if len(tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(tasks))
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		f := allFilter()
		f.Limit = 2
		tasks, err := repo.List(ctx, f)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].Title != "Archive logs" {
			t.Errorf("limit should keep the newest tasks, got %q first", tasks[0].Title)
		}
	})
}

func TestTaskRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := seedTask(t, db, &models.Task{
		Title: "Toggle me", Status: models.StatusDone, Completed: true,
	})

	// Save must write zero values too, reverting completed to false.
	task.Completed = false
	task.Status = models.StatusOpen
	if err := repo.Update(ctx, task); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var found models.Task
	if err := db.First(&found, task.ID).Error; err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if found.Completed {
		t.Error("expected completed=false after update")
	}
	if found.Status != models.StatusOpen {
		t.Errorf("expected status %q, got %q", models.StatusOpen, found.Status)
	}
}

func TestTaskRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := seedTask(t, db, &models.Task{Title: "To be deleted"})

	t.Run("delete existing task", func(t *testing.T) {
		if err := repo.Delete(ctx, task.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := repo.GetByID(ctx, task.ID); err != repositories.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
		}
	})

	t.Run("delete non-existent task", func(t *testing.T) {
		if err := repo.Delete(ctx, task.ID); err != repositories.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestTaskRepository_Ping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
