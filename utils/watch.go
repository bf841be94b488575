package utils

import (
	"context"
	"log"
	"time"

	"taskify/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Live queries: every mutation publishes an invalidation message on a redis
// channel, watchers re-run their query and deliver the full result set. The
// client always receives whole snapshots, never diffs.

func projectsChannel(userID string) string {
	return "taskify:projects:" + userID
}

func tasksChannel(projectID string) string {
	return "taskify:tasks:" + projectID
}

// NotifyProjectsChanged pokes the project watchers of every given user.
func NotifyProjectsChanged(client *redis.Client, userIDs ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, uid := range userIDs {
		if err := client.Publish(ctx, projectsChannel(uid), "changed").Err(); err != nil {
			log.Println("Error publishing project change:", err)
		}
	}
}

// NotifyTasksChanged pokes the board watchers of a project.
func NotifyTasksChanged(client *redis.Client, projectID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Publish(ctx, tasksChannel(projectID), "changed").Err(); err != nil {
		log.Println("Error publishing task change:", err)
	}
}

// WatchProjects emits the user's project list immediately and again after
// every change notification. The channel closes when ctx is cancelled.
func WatchProjects(ctx context.Context, userID string, db *pgxpool.Pool, client *redis.Client) <-chan []models.Project {
	out := make(chan []models.Project, 1)
	sub := client.Subscribe(ctx, projectsChannel(userID))

	go func() {
		defer close(out)
		defer sub.Close()

		fetch := func() {
			projects, err := GetProjects(userID, db)
			if err != nil {
				log.Println("Error refreshing project snapshot:", err)
				return
			}
			select {
			case out <- projects:
			case <-ctx.Done():
			}
		}

		fetch()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				fetch()
			}
		}
	}()

	return out
}

// WatchTasks emits the project's board immediately and again after every
// change notification. The channel closes when ctx is cancelled.
func WatchTasks(ctx context.Context, projectID string, db *pgxpool.Pool, client *redis.Client) <-chan models.Board {
	out := make(chan models.Board, 1)
	sub := client.Subscribe(ctx, tasksChannel(projectID))

	go func() {
		defer close(out)
		defer sub.Close()

		fetch := func() {
			board, err := GetBoard(projectID, db)
			if err != nil {
				log.Println("Error refreshing board snapshot:", err)
				return
			}
			select {
			case out <- board:
			case <-ctx.Done():
			}
		}

		fetch()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				fetch()
			}
		}
	}()

	return out
}
