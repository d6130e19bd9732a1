package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/domain/dto"
	"taskboard-api/domain/models"
	"taskboard-api/domain/services"
	"taskboard-api/infrastructure/postgres"
)

func newTestTaskService(t *testing.T) (services.TaskService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewTaskService(postgres.NewTaskRepository(db)), db
}

func TestCreateTask(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")

	task, err := svc.Create(ctx, owner.ID, &dto.CreateTaskRequest{Title: "ซื้อของเข้าบ้าน"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want default %q", task.Priority, models.PriorityMedium)
	}
	if task.Completed {
		t.Error("completed = true, want default false")
	}
	if task.UserID != owner.ID {
		t.Errorf("owner = %v, want %v", task.UserID, owner.ID)
	}

	explicit, err := svc.Create(ctx, owner.ID, &dto.CreateTaskRequest{
		Title:    "ส่งรายงาน",
		Priority: models.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if explicit.Priority != models.PriorityHigh {
		t.Errorf("priority = %q, want %q", explicit.Priority, models.PriorityHigh)
	}
}

func TestGetTaskOwnership(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")
	other := seedUser(t, db, "Somsak", "somsak@example.com", "secret123")
	task := seedTask(t, db, owner.ID, "งานของ somchai", models.PriorityMedium, false, time.Now())

	got, err := svc.Get(ctx, task.ID, owner.ID)
	if err != nil {
		t.Fatalf("Get() by owner error = %v", err)
	}
	if got.ID != task.ID {
		t.Errorf("task ID = %v, want %v", got.ID, task.ID)
	}

	// คนอื่นเข้าถึงไม่ได้
	if _, err := svc.Get(ctx, task.ID, other.ID); !errors.Is(err, services.ErrNotOwner) {
		t.Errorf("Get() by non-owner error = %v, want ErrNotOwner", err)
	}

	// ไม่มี task -> not found เสมอ ไม่ใช่ forbidden
	if _, err := svc.Get(ctx, uuid.New(), other.ID); !errors.Is(err, services.ErrTaskNotFound) {
		t.Errorf("Get() missing task error = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateTask(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")
	other := seedUser(t, db, "Somsak", "somsak@example.com", "secret123")
	task := seedTask(t, db, owner.ID, "งานเดิม", models.PriorityHigh, true, time.Now())

	completed := false
	updated, err := svc.Update(ctx, task.ID, owner.ID, &dto.UpdateTaskRequest{
		Title:     "งานแก้แล้ว",
		Completed: &completed,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "งานแก้แล้ว" {
		t.Errorf("title = %q, want %q", updated.Title, "งานแก้แล้ว")
	}
	// field ที่ไม่ได้ส่งต้องคงค่าเดิม
	if updated.Priority != models.PriorityHigh {
		t.Errorf("priority = %q, want unchanged %q", updated.Priority, models.PriorityHigh)
	}

	// completed=false ต้องถูกเขียนลง store จริง ไม่โดนมองเป็น zero value แล้วข้าม
	stored, err := svc.Get(ctx, task.ID, owner.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Completed {
		t.Error("completed = true after update, want false")
	}

	if _, err := svc.Update(ctx, task.ID, other.ID, &dto.UpdateTaskRequest{Title: "แอบแก้"}); !errors.Is(err, services.ErrNotOwner) {
		t.Errorf("Update() by non-owner error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Update(ctx, uuid.New(), owner.ID, &dto.UpdateTaskRequest{Title: "ไม่มีอยู่"}); !errors.Is(err, services.ErrTaskNotFound) {
		t.Errorf("Update() missing task error = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")
	other := seedUser(t, db, "Somsak", "somsak@example.com", "secret123")
	task := seedTask(t, db, owner.ID, "งานรอลบ", models.PriorityLow, false, time.Now())

	if err := svc.Delete(ctx, task.ID, other.ID); !errors.Is(err, services.ErrNotOwner) {
		t.Errorf("Delete() by non-owner error = %v, want ErrNotOwner", err)
	}

	if err := svc.Delete(ctx, task.ID, owner.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.Get(ctx, task.ID, owner.ID); !errors.Is(err, services.ErrTaskNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrTaskNotFound", err)
	}
	if err := svc.Delete(ctx, task.ID, owner.ID); !errors.Is(err, services.ErrTaskNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrTaskNotFound", err)
	}
}

func TestListTasks(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")
	other := seedUser(t, db, "Somsak", "somsak@example.com", "secret123")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		priority := models.PriorityLow
		if i%3 == 0 {
			priority = models.PriorityHigh
		}
		seedTask(t, db, owner.ID, fmt.Sprintf("งานที่ %d", i), priority, i%2 == 0, base.Add(time.Duration(i)*time.Minute))
	}
	seedTask(t, db, other.ID, "งานของคนอื่น", models.PriorityLow, false, base)

	// หน้าแรก - ใหม่สุดก่อน และไม่เห็นงานของคนอื่น
	tasks, total, err := svc.List(ctx, owner.ID, &dto.TaskFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 15 {
		t.Errorf("total = %d, want 15", total)
	}
	if len(tasks) != 10 {
		t.Errorf("len(tasks) = %d, want 10", len(tasks))
	}
	if tasks[0].Title != "งานที่ 14" {
		t.Errorf("first task = %q, want newest %q", tasks[0].Title, "งานที่ 14")
	}

	// หน้าสอง
	tasks, total, err = svc.List(ctx, owner.ID, &dto.TaskFilter{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 15 {
		t.Errorf("total = %d, want 15", total)
	}
	if len(tasks) != 5 {
		t.Errorf("len(tasks) = %d, want 5", len(tasks))
	}

	// filter ตาม completed
	completed := true
	tasks, total, err = svc.List(ctx, owner.ID, &dto.TaskFilter{Completed: &completed, Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 8 {
		t.Errorf("completed total = %d, want 8", total)
	}
	for _, task := range tasks {
		if !task.Completed {
			t.Errorf("task %q not completed", task.Title)
		}
	}

	// filter ตาม priority
	_, total, err = svc.List(ctx, owner.ID, &dto.TaskFilter{Priority: models.PriorityHigh, Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 {
		t.Errorf("high priority total = %d, want 5", total)
	}

	// page/limit ที่ไม่ valid ใช้ default แทน
	tasks, _, err = svc.List(ctx, owner.ID, &dto.TaskFilter{Page: 0, Limit: -5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 10 {
		t.Errorf("len(tasks) = %d, want default limit 10", len(tasks))
	}
}

func TestTaskStats(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()

	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seedTask(t, db, owner.ID, "งาน a", models.PriorityHigh, false, base)
	seedTask(t, db, owner.ID, "งาน b", models.PriorityLow, false, base.Add(time.Minute))
	seedTask(t, db, owner.ID, "งาน c", models.PriorityHigh, true, base.Add(2*time.Minute))
	seedTask(t, db, owner.ID, "งาน d", models.PriorityMedium, false, base.Add(3*time.Minute))

	stats, err := svc.Stats(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if len(stats.CompletionStats) != 2 {
		t.Fatalf("len(CompletionStats) = %d, want 2", len(stats.CompletionStats))
	}
	// group false มาก่อน true
	if stats.CompletionStats[0].Completed || !stats.CompletionStats[1].Completed {
		t.Errorf("completion group order = [%v, %v], want [false, true]",
			stats.CompletionStats[0].Completed, stats.CompletionStats[1].Completed)
	}
	if stats.CompletionStats[0].Count != 3 {
		t.Errorf("incomplete count = %d, want 3", stats.CompletionStats[0].Count)
	}
	if stats.CompletionStats[1].Count != 1 {
		t.Errorf("completed count = %d, want 1", stats.CompletionStats[1].Count)
	}
	if len(stats.CompletionStats[0].Tasks) != 3 {
		t.Errorf("len(incomplete tasks) = %d, want 3", len(stats.CompletionStats[0].Tasks))
	}

	// priority เรียงตามตัวอักษร: high, low, medium
	wantPriorities := []dto.PriorityGroup{
		{Priority: models.PriorityHigh, Count: 2},
		{Priority: models.PriorityLow, Count: 1},
		{Priority: models.PriorityMedium, Count: 1},
	}
	if len(stats.PriorityStats) != len(wantPriorities) {
		t.Fatalf("len(PriorityStats) = %d, want %d", len(stats.PriorityStats), len(wantPriorities))
	}
	for i, want := range wantPriorities {
		if stats.PriorityStats[i] != want {
			t.Errorf("PriorityStats[%d] = %+v, want %+v", i, stats.PriorityStats[i], want)
		}
	}
}

func TestTaskStatsEmpty(t *testing.T) {
	svc, db := newTestTaskService(t)
	owner := seedUser(t, db, "Somchai", "somchai@example.com", "secret123")

	stats, err := svc.Stats(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.CompletionStats == nil || len(stats.CompletionStats) != 0 {
		t.Errorf("CompletionStats = %v, want empty non-nil slice", stats.CompletionStats)
	}
	if stats.PriorityStats == nil || len(stats.PriorityStats) != 0 {
		t.Errorf("PriorityStats = %v, want empty non-nil slice", stats.PriorityStats)
	}
}
