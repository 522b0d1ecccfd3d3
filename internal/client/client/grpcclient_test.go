package client

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/Kisalay21/familytree/internal/client/feedapi"
	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/common"
	pb "github.com/Kisalay21/familytree/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubServer struct {
	pb.UnimplementedFamilyFeedServer

	mu       sync.Mutex
	appended []*pb.Post
	updates  []*pb.UpdateRequest
	deleted  []string

	snapshots    chan *pb.FeedSnapshot
	subscribeErr error
}

func newStubServer() *stubServer {
	return &stubServer{snapshots: make(chan *pb.FeedSnapshot, 4)}
}

func (s *stubServer) Append(ctx context.Context, req *pb.AppendRequest) (*pb.AppendResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appended = append(s.appended, req.GetPost())
	return &pb.AppendResponse{Id: "post-1"}, nil
}

func (s *stubServer) Update(ctx context.Context, req *pb.UpdateRequest) (*pb.UpdateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, req)
	return &pb.UpdateResponse{}, nil
}

func (s *stubServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, req.Id)
	return &pb.DeleteResponse{}, nil
}

func (s *stubServer) Subscribe(req *pb.SubscribeRequest, stream pb.FamilyFeed_SubscribeServer) error {
	for snap := range s.snapshots {
		if err := stream.Send(snap); err != nil {
			return err
		}
	}
	return s.subscribeErr
}

func (s *stubServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *stubServer) GetUploadUrl(ctx context.Context, req *pb.GetUploadUrlRequest) (*pb.GetUploadUrlResponse, error) {
	return &pb.GetUploadUrlResponse{Url: "http://example.com/put", ObjectKey: "uploads/" + req.FileName}, nil
}

func setupClient(t *testing.T, srv pb.FamilyFeedServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	pb.RegisterFamilyFeedServer(grpcServer, srv)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	c := &GRPCClient{conn: conn, client: pb.NewFamilyFeedClient(conn)}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestAppend_SendsPostAndReturnsID(t *testing.T) {
	srv := newStubServer()
	c := setupClient(t, srv)

	id, err := c.Append(context.Background(), models.Post{
		VaultMediaID: "42",
		Author:       "Ravi",
		Content:      "hello",
		CommentsList: []models.PostComment{{ID: "c1", Text: "hi", Timestamp: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "post-1", id)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	require.Len(t, srv.appended, 1)
	assert.Equal(t, "42", srv.appended[0].VaultMediaId)
	assert.Equal(t, "Ravi", srv.appended[0].Author)
	require.Len(t, srv.appended[0].CommentsList, 1)
	assert.Equal(t, "hi", srv.appended[0].CommentsList[0].Text)
}

func TestUpdate_SetsPresenceFlags(t *testing.T) {
	srv := newStubServer()
	c := setupClient(t, srv)

	likes := int64(0)
	liked := false
	err := c.Update(context.Background(), "post-1", feedapi.Patch{
		Likes:           &likes,
		IsLiked:         &liked,
		HasCommentsList: true,
		CommentsList:    []models.PostComment{},
	})
	require.NoError(t, err)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	require.Len(t, srv.updates, 1)
	req := srv.updates[0]
	// Zero values still travel because the flags mark presence.
	assert.True(t, req.HasLikes)
	assert.Zero(t, req.Likes)
	assert.True(t, req.HasIsLiked)
	assert.False(t, req.IsLiked)
	assert.True(t, req.HasCommentsList)
	assert.False(t, req.HasComments)
	assert.False(t, req.HasContent)
}

func TestSubscribe_DeliversSnapshotsAndReportsBreak(t *testing.T) {
	srv := newStubServer()
	srv.subscribeErr = status.Error(codes.Unavailable, "going away")
	c := setupClient(t, srv)

	type delivery struct {
		posts []models.Post
		err   error
	}
	got := make(chan delivery, 4)

	cancel, err := c.Subscribe(context.Background(), func(posts []models.Post, err error) {
		got <- delivery{posts, err}
	})
	require.NoError(t, err)
	defer cancel()

	srv.snapshots <- &pb.FeedSnapshot{Posts: []*pb.Post{{Id: "p1", Author: "Sita", Likes: 3}}}

	select {
	case d := <-got:
		require.NoError(t, d.err)
		require.Len(t, d.posts, 1)
		assert.Equal(t, "p1", d.posts[0].ID)
		assert.Equal(t, "Sita", d.posts[0].Author)
		assert.EqualValues(t, 3, d.posts[0].Likes)
	case <-time.After(5 * time.Second):
		t.Fatal("no snapshot delivered")
	}

	// Server ends the stream with an error; the callback gets it once.
	close(srv.snapshots)
	select {
	case d := <-got:
		require.Error(t, d.err)
		assert.ErrorIs(t, d.err, common.ErrFeedUnavailable)
		assert.Nil(t, d.posts)
	case <-time.After(5 * time.Second):
		t.Fatal("stream break not reported")
	}
}

func TestSubscribe_CancelIsSilent(t *testing.T) {
	srv := newStubServer()
	c := setupClient(t, srv)

	got := make(chan error, 1)
	cancel, err := c.Subscribe(context.Background(), func(posts []models.Post, err error) {
		if err != nil {
			got <- err
		}
	})
	require.NoError(t, err)

	cancel()

	select {
	case err := <-got:
		t.Fatalf("callback got error after cancel: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestGetUploadURL(t *testing.T) {
	srv := newStubServer()
	c := setupClient(t, srv)

	url, key, err := c.GetUploadURL(context.Background(), "photo.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/put", url)
	assert.Equal(t, "uploads/photo.jpg", key)
}

func TestPing(t *testing.T) {
	srv := newStubServer()
	c := setupClient(t, srv)

	require.NoError(t, c.Ping(context.Background()))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), common.ErrFeedUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), common.ErrFeedUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	assert.NotErrorIs(t, c.mapError(status.Error(codes.Internal, "x")), common.ErrFeedUnavailable)
}
