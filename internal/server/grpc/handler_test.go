package grpc

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Kisalay21/familytree/internal/logging"
	pb "github.com/Kisalay21/familytree/internal/proto"
	"github.com/Kisalay21/familytree/internal/server/config"
	"github.com/Kisalay21/familytree/internal/server/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"

	_ "modernc.org/sqlite"
)

func setupServer(t *testing.T) *GRPCServer {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE posts (
		id TEXT PRIMARY KEY,
		vault_media_id TEXT NOT NULL DEFAULT '',
		author_id TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		author_image TEXT NOT NULL DEFAULT '',
		relationship TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		video TEXT NOT NULL DEFAULT '',
		ts TEXT NOT NULL DEFAULT '',
		display_time TEXT NOT NULL DEFAULT '',
		likes INTEGER NOT NULL DEFAULT 0,
		is_liked INTEGER NOT NULL DEFAULT 0,
		comments INTEGER NOT NULL DEFAULT 0,
		comments_list BLOB NOT NULL DEFAULT '[]'
	);`)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	fs := feed.NewService(db, feed.NewHub(), cfg)

	s, err := NewGRPCServer(":0", logger, fs)
	require.NoError(t, err)
	return s
}

func TestAppendUpdateDelete(t *testing.T) {
	s := setupServer(t)
	ctx := context.Background()

	resp, err := s.Append(ctx, &pb.AppendRequest{Post: &pb.Post{
		Author: "Mohan", Timestamp: "2026-08-31T10:00:00Z",
		CommentsList: []*pb.Comment{{Id: "c1", Text: "hi"}},
	}})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Id)

	_, err = s.Update(ctx, &pb.UpdateRequest{
		Id: resp.Id, HasLikes: true, Likes: 7, HasIsLiked: true, IsLiked: true,
	})
	require.NoError(t, err)

	posts, err := s.feed.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.EqualValues(t, 7, posts[0].Likes)
	assert.True(t, posts[0].IsLiked)
	require.Len(t, posts[0].CommentsList, 1)
	assert.Equal(t, "hi", posts[0].CommentsList[0].Text)

	_, err = s.Delete(ctx, &pb.DeleteRequest{Id: resp.Id})
	require.NoError(t, err)

	posts, err = s.feed.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPing(t *testing.T) {
	s := setupServer(t)

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

type fakeSubscribeStream struct {
	grpclib.ServerStream
	ctx  context.Context
	sent chan *pb.FeedSnapshot
}

func (f *fakeSubscribeStream) Context() context.Context { return f.ctx }

func (f *fakeSubscribeStream) Send(snap *pb.FeedSnapshot) error {
	f.sent <- snap
	return nil
}

func TestSubscribe_InitialAndChangeSnapshots(t *testing.T) {
	s := setupServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := s.Append(ctx, &pb.AppendRequest{Post: &pb.Post{Author: "Mohan", Timestamp: "1"}})
	require.NoError(t, err)

	stream := &fakeSubscribeStream{ctx: ctx, sent: make(chan *pb.FeedSnapshot, 4)}
	done := make(chan error, 1)
	go func() { done <- s.Subscribe(&pb.SubscribeRequest{}, stream) }()

	// Initial snapshot arrives without any change.
	select {
	case snap := <-stream.sent:
		require.Len(t, snap.GetPosts(), 1)
		assert.Equal(t, "Mohan", snap.GetPosts()[0].Author)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot")
	}

	_, err = s.Append(ctx, &pb.AppendRequest{Post: &pb.Post{Author: "Sita", Timestamp: "2"}})
	require.NoError(t, err)

	select {
	case snap := <-stream.sent:
		require.Len(t, snap.GetPosts(), 2)
		assert.Equal(t, "Sita", snap.GetPosts()[0].Author)
	case <-time.After(2 * time.Second):
		t.Fatal("no change snapshot")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not stop on context cancel")
	}
}
