package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Kisalay21/familytree/internal/client/feedapi"
	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/common"
	pb "github.com/Kisalay21/familytree/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const pingTimeout = 12 * time.Second

// GRPCClient implements feedapi.Collection against the family feed server.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FamilyFeedClient
}

var _ feedapi.Collection = (*GRPCClient)(nil)

func NewFamilyFeedClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFamilyFeedClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Append(ctx context.Context, post models.Post) (string, error) {
	req := &pb.AppendRequest{Post: postToProto(post)}

	resp, err := s.client.Append(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Id, nil
}

func (s *GRPCClient) Update(ctx context.Context, id string, patch feedapi.Patch) error {
	req := &pb.UpdateRequest{Id: id}
	if patch.Likes != nil {
		req.HasLikes = true
		req.Likes = *patch.Likes
	}
	if patch.IsLiked != nil {
		req.HasIsLiked = true
		req.IsLiked = *patch.IsLiked
	}
	if patch.Comments != nil {
		req.HasComments = true
		req.Comments = *patch.Comments
	}
	if patch.HasCommentsList {
		req.HasCommentsList = true
		req.CommentsList = commentsToProto(patch.CommentsList)
	}
	if patch.Content != nil {
		req.HasContent = true
		req.Content = *patch.Content
	}

	if _, err := s.client.Update(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Delete(ctx, &pb.DeleteRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

// Subscribe opens the snapshot stream and pumps every received snapshot
// into fn. On a stream break fn is called once with the error; a cancel
// via the returned func is silent.
func (s *GRPCClient) Subscribe(ctx context.Context, fn func(posts []models.Post, err error)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		cancel()
		return nil, s.mapError(err)
	}

	go func() {
		for {
			snap, err := stream.Recv()
			if err != nil {
				if ctx.Err() == nil {
					fn(nil, s.mapError(err))
				}
				return
			}

			posts := make([]models.Post, 0, len(snap.GetPosts()))
			for _, p := range snap.GetPosts() {
				posts = append(posts, postFromProto(p))
			}
			fn(posts, nil)
		}
	}()

	return cancel, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return common.ErrFeedUnavailable
	}
	return nil
}

// GetUploadURL asks the server for a presigned PUT URL and the object key
// the payload will live under.
func (s *GRPCClient) GetUploadURL(ctx context.Context, fileName, contentType string) (string, string, error) {
	req := &pb.GetUploadUrlRequest{FileName: fileName, ContentType: contentType}

	resp, err := s.client.GetUploadUrl(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Url, resp.ObjectKey, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", common.ErrFeedUnavailable, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
