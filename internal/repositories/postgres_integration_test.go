//go:build integration

package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"reviewsBack/internal/models"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func setupPostgres(t *testing.T) *Database {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "reviews",
				"POSTGRES_PASSWORD": "reviews",
				"POSTGRES_DB":       "reviews",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dbURL := fmt.Sprintf("postgres://reviews:reviews@%s:%s/reviews?sslmode=disable", host, port.Port())
	db, err := OpenDatabase(ctx, dbURL)
	if err != nil {
		t.Fatalf("OpenDatabase: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestPostgresUserReviewStore(t *testing.T) {
	db := setupPostgres(t)
	repo := NewUserReviewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateUserReview(ctx, models.UserReview{ReviewerID: 1, RevieweeID: 2, BookingID: 100, Score: 3})
	if err != nil {
		t.Fatalf("CreateUserReview: %v", err)
	}
	if created.ID == 0 || created.Timestamp.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", created)
	}

	_, err = repo.CreateUserReview(ctx, models.UserReview{ReviewerID: 1, RevieweeID: 2, BookingID: 100, Score: 4})
	if !errors.Is(err, models.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}

	for i, score := range []int{2, 4} {
		if _, err := repo.CreateUserReview(ctx, models.UserReview{ReviewerID: 1, RevieweeID: 2, BookingID: 200 + i, Score: score}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	avg, ok, err := repo.GetRevieweeAverageScore(ctx, 2)
	if err != nil || !ok || avg != 3.0 {
		t.Fatalf("expected average 3.0, got %v ok=%v err=%v", avg, ok, err)
	}

	filters, err := UserReviewFilters.Bind(url.Values{"booking_id": {"100"}})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	got, err := repo.GetUserReviews(ctx, filters)
	if err != nil {
		t.Fatalf("GetUserReviews: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("expected the created review back, got %+v", got)
	}
}
