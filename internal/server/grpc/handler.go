package grpc

import (
	"context"

	pb "github.com/Kisalay21/familytree/internal/proto"
	"github.com/Kisalay21/familytree/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func postFromProto(p *pb.Post) *models.Post {
	if p == nil {
		return &models.Post{}
	}
	return &models.Post{
		ID:           p.Id,
		VaultMediaID: p.VaultMediaId,
		AuthorID:     p.AuthorId,
		Author:       p.Author,
		AuthorImage:  p.AuthorImage,
		Relationship: p.Relationship,
		Content:      p.Content,
		Image:        p.Image,
		Video:        p.Video,
		Timestamp:    p.Timestamp,
		DisplayTime:  p.DisplayTime,
		Likes:        p.Likes,
		IsLiked:      p.IsLiked,
		Comments:     p.Comments,
		CommentsList: commentsFromProto(p.CommentsList),
	}
}

func postToProto(p models.Post) *pb.Post {
	return &pb.Post{
		Id:           p.ID,
		VaultMediaId: p.VaultMediaID,
		AuthorId:     p.AuthorID,
		Author:       p.Author,
		AuthorImage:  p.AuthorImage,
		Relationship: p.Relationship,
		Content:      p.Content,
		Image:        p.Image,
		Video:        p.Video,
		Timestamp:    p.Timestamp,
		DisplayTime:  p.DisplayTime,
		Likes:        p.Likes,
		IsLiked:      p.IsLiked,
		Comments:     p.Comments,
		CommentsList: commentsToProto(p.CommentsList),
	}
}

func commentsFromProto(list []*pb.Comment) []models.Comment {
	out := make([]models.Comment, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		out = append(out, models.Comment{
			ID:          c.Id,
			Author:      c.Author,
			AuthorImage: c.AuthorImage,
			Text:        c.Text,
			Timestamp:   c.Timestamp,
		})
	}
	return out
}

func commentsToProto(list []models.Comment) []*pb.Comment {
	out := make([]*pb.Comment, 0, len(list))
	for _, c := range list {
		out = append(out, &pb.Comment{
			Id:          c.ID,
			Author:      c.Author,
			AuthorImage: c.AuthorImage,
			Text:        c.Text,
			Timestamp:   c.Timestamp,
		})
	}
	return out
}

func (s *GRPCServer) Append(ctx context.Context, req *pb.AppendRequest) (*pb.AppendResponse, error) {

	id, err := s.feed.Append(ctx, postFromProto(req.GetPost()))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AppendResponse{Id: id}, nil
}

func (s *GRPCServer) Update(ctx context.Context, req *pb.UpdateRequest) (*pb.UpdateResponse, error) {

	patch := models.PostPatch{}
	if req.HasLikes {
		patch.Likes = &req.Likes
	}
	if req.HasIsLiked {
		patch.IsLiked = &req.IsLiked
	}
	if req.HasComments {
		patch.Comments = &req.Comments
	}
	if req.HasCommentsList {
		patch.HasCommentsList = true
		patch.CommentsList = commentsFromProto(req.CommentsList)
	}
	if req.HasContent {
		patch.Content = &req.Content
	}

	if err := s.feed.Update(ctx, req.Id, patch); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UpdateResponse{}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {

	if err := s.feed.Delete(ctx, req.Id); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.DeleteResponse{}, nil
}

// Subscribe pushes the current snapshot immediately, then a fresh one after
// every change, until the client goes away.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream pb.FamilyFeed_SubscribeServer) error {

	ctx := stream.Context()

	updates, unsubscribe := s.feed.Hub().Subscribe()
	defer unsubscribe()

	posts, err := s.feed.List(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
	if err := s.sendSnapshot(stream, posts); err != nil {
		return err
	}

	for {
		select {
		case posts, ok := <-updates:
			if !ok {
				return nil
			}
			if err := s.sendSnapshot(stream, posts); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *GRPCServer) sendSnapshot(stream pb.FamilyFeed_SubscribeServer, posts []models.Post) error {
	snap := &pb.FeedSnapshot{Posts: make([]*pb.Post, 0, len(posts))}
	for _, p := range posts {
		snap.Posts = append(snap.Posts, postToProto(p))
	}
	return stream.Send(snap)
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetUploadUrl(ctx context.Context, req *pb.GetUploadUrlRequest) (*pb.GetUploadUrlResponse, error) {

	url, key, err := s.feed.GetPresignedPutURL(ctx, req.FileName, req.ContentType)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetUploadUrlResponse{Url: url, ObjectKey: key}, nil
}
