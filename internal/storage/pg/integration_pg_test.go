package pg

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lacentralbaja/archivo/internal/config"
	"github.com/lacentralbaja/archivo/internal/domain"
)

var storage *Storage

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "archivo"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// First, we wait for the container to log readiness twice.
			// This is because it will restart itself after the first startup.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

func truncate(t *testing.T) {
	t.Helper()
	_, err := storage.db.Exec("TRUNCATE board_posts, artists")
	require.NoError(t, err)
}

func testPost(id string, createdAt int64, status domain.Status) domain.BoardPost {
	return domain.BoardPost{
		Id:        id,
		CreatedAt: createdAt,
		Title:     "title " + id,
		Body:      "body",
		Author:    "Anónimo",
		Tags:      "arte, barrio",
		Status:    status,
	}
}

func TestBoardPostLifecycle(t *testing.T) {
	truncate(t)

	post := testPost("p-1", 1000, domain.StatusPending)
	require.NoError(t, storage.CreateBoardPost(post))

	// Pending rows are invisible on the public listing.
	approved, err := storage.ListBoardPosts(domain.StatusApproved, 50)
	require.NoError(t, err)
	assert.Empty(t, approved)

	pending, err := storage.ListBoardPosts(domain.StatusPending, 50)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, post, pending[0])

	// Approve: the row moves queues.
	count, err := storage.SetBoardPostStatus("p-1", domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	approved, err = storage.ListBoardPosts(domain.StatusApproved, 50)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	pending, err = storage.ListBoardPosts(domain.StatusPending, 50)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Reject: gone from public again, row still present.
	count, err = storage.SetBoardPostStatus("p-1", domain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	approved, err = storage.ListBoardPosts(domain.StatusApproved, 50)
	require.NoError(t, err)
	assert.Empty(t, approved)

	rejected, err := storage.ListBoardPosts(domain.StatusRejected, 50)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
}

func TestBoardPostStatusUpdate_MissingId(t *testing.T) {
	truncate(t)

	count, err := storage.SetBoardPostStatus("missing", domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestBoardPostListing_NewestFirstWithLimit(t *testing.T) {
	truncate(t)

	for i := 0; i < 5; i++ {
		post := testPost(fmt.Sprintf("p-%d", i), int64(1000+i), domain.StatusApproved)
		require.NoError(t, storage.CreateBoardPost(post))
	}

	posts, err := storage.ListBoardPosts(domain.StatusApproved, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "p-4", posts[0].Id)
	assert.Equal(t, "p-3", posts[1].Id)
	assert.Equal(t, "p-2", posts[2].Id)
}

func TestBoardPostDelete(t *testing.T) {
	truncate(t)

	require.NoError(t, storage.CreateBoardPost(testPost("p-1", 1000, domain.StatusApproved)))

	count, err := storage.DeleteBoardPost("p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.DeleteBoardPost("p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// Two moderators racing on the same post must leave it in exactly one of the
// two states, never neither and never an error.
func TestBoardPostStatus_ConcurrentModeration(t *testing.T) {
	truncate(t)

	require.NoError(t, storage.CreateBoardPost(testPost("p-1", 1000, domain.StatusPending)))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		status := domain.StatusApproved
		if i%2 == 1 {
			status = domain.StatusRejected
		}
		wg.Add(1)
		go func(status domain.Status) {
			defer wg.Done()
			count, err := storage.SetBoardPostStatus("p-1", status)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), count)
		}(status)
	}
	wg.Wait()

	var finalStatus string
	require.NoError(t, storage.db.QueryRow("SELECT status FROM board_posts WHERE id = 'p-1'").Scan(&finalStatus))
	assert.Contains(t, []string{"approved", "rejected"}, finalStatus)
}

func TestArtistLifecycle(t *testing.T) {
	truncate(t)

	artist := domain.Artist{
		Id:        "a-1",
		CreatedAt: 2000,
		Name:      "Marta",
		Bio:       "pinta murales",
		Role:      "ilustración",
		Link:      "https://m.example",
		Tags:      "mural",
		ImagePath: "2000-abc.png",
	}
	require.NoError(t, storage.CreateArtist(artist))

	artists, err := storage.ListArtists(50)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, artist, artists[0])

	count, err := storage.DeleteArtist("a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.DeleteArtist("a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestArtistListing_NewestFirst(t *testing.T) {
	truncate(t)

	for i := 0; i < 3; i++ {
		artist := domain.Artist{Id: fmt.Sprintf("a-%d", i), CreatedAt: int64(1000 + i), Name: "n"}
		require.NoError(t, storage.CreateArtist(artist))
	}

	artists, err := storage.ListArtists(2)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "a-2", artists[0].Id)
	assert.Equal(t, "a-1", artists[1].Id)
}
