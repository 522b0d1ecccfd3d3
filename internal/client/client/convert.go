package client

import (
	"github.com/Kisalay21/familytree/internal/client/models"
	pb "github.com/Kisalay21/familytree/internal/proto"
)

func postToProto(p models.Post) *pb.Post {
	return &pb.Post{
		Id:           p.ID,
		VaultMediaId: p.VaultMediaID.String(),
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

func postFromProto(p *pb.Post) models.Post {
	return models.Post{
		ID:           p.Id,
		VaultMediaID: models.FlexID(p.VaultMediaId),
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

func commentsToProto(list []models.PostComment) []*pb.Comment {
	out := make([]*pb.Comment, 0, len(list))
	for _, c := range list {
		out = append(out, &pb.Comment{
			Id:          c.ID.String(),
			Author:      c.Author,
			AuthorImage: c.AuthorImage,
			Text:        c.Text,
			Timestamp:   c.Timestamp,
		})
	}
	return out
}

func commentsFromProto(list []*pb.Comment) []models.PostComment {
	out := make([]models.PostComment, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		out = append(out, models.PostComment{
			ID:          models.FlexID(c.Id),
			Author:      c.Author,
			AuthorImage: c.AuthorImage,
			Text:        c.Text,
			Timestamp:   c.Timestamp,
		})
	}
	return out
}
