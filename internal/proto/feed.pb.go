// Package proto carries the wire types for the FamilyFeed service. The
// structs are maintained by hand in lockstep with feed.proto; the runtime
// derives their descriptors from the struct tags.
package proto

import (
	"fmt"

	"google.golang.org/protobuf/protoadapt"
)

// The grpc proto codec accepts legacy messages; each type below must keep
// satisfying that contract.
var (
	_ protoadapt.MessageV1 = (*Comment)(nil)
	_ protoadapt.MessageV1 = (*Post)(nil)
	_ protoadapt.MessageV1 = (*AppendRequest)(nil)
	_ protoadapt.MessageV1 = (*AppendResponse)(nil)
	_ protoadapt.MessageV1 = (*UpdateRequest)(nil)
	_ protoadapt.MessageV1 = (*UpdateResponse)(nil)
	_ protoadapt.MessageV1 = (*DeleteRequest)(nil)
	_ protoadapt.MessageV1 = (*DeleteResponse)(nil)
	_ protoadapt.MessageV1 = (*SubscribeRequest)(nil)
	_ protoadapt.MessageV1 = (*FeedSnapshot)(nil)
	_ protoadapt.MessageV1 = (*PingRequest)(nil)
	_ protoadapt.MessageV1 = (*PingResponse)(nil)
	_ protoadapt.MessageV1 = (*GetUploadUrlRequest)(nil)
	_ protoadapt.MessageV1 = (*GetUploadUrlResponse)(nil)
)

type Comment struct {
	Id          string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Author      string `protobuf:"bytes,2,opt,name=author,proto3" json:"author,omitempty"`
	AuthorImage string `protobuf:"bytes,3,opt,name=author_image,json=authorImage,proto3" json:"author_image,omitempty"`
	Text        string `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	Timestamp   int64  `protobuf:"varint,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *Comment) Reset()         { *m = Comment{} }
func (m *Comment) String() string { return fmt.Sprintf("%+v", *m) }
func (*Comment) ProtoMessage()    {}

type Post struct {
	Id           string     `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VaultMediaId string     `protobuf:"bytes,2,opt,name=vault_media_id,json=vaultMediaId,proto3" json:"vault_media_id,omitempty"`
	AuthorId     string     `protobuf:"bytes,3,opt,name=author_id,json=authorId,proto3" json:"author_id,omitempty"`
	Author       string     `protobuf:"bytes,4,opt,name=author,proto3" json:"author,omitempty"`
	AuthorImage  string     `protobuf:"bytes,5,opt,name=author_image,json=authorImage,proto3" json:"author_image,omitempty"`
	Relationship string     `protobuf:"bytes,6,opt,name=relationship,proto3" json:"relationship,omitempty"`
	Content      string     `protobuf:"bytes,7,opt,name=content,proto3" json:"content,omitempty"`
	Image        string     `protobuf:"bytes,8,opt,name=image,proto3" json:"image,omitempty"`
	Video        string     `protobuf:"bytes,9,opt,name=video,proto3" json:"video,omitempty"`
	Timestamp    string     `protobuf:"bytes,10,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	DisplayTime  string     `protobuf:"bytes,11,opt,name=display_time,json=displayTime,proto3" json:"display_time,omitempty"`
	Likes        int64      `protobuf:"varint,12,opt,name=likes,proto3" json:"likes,omitempty"`
	IsLiked      bool       `protobuf:"varint,13,opt,name=is_liked,json=isLiked,proto3" json:"is_liked,omitempty"`
	Comments     int64      `protobuf:"varint,14,opt,name=comments,proto3" json:"comments,omitempty"`
	CommentsList []*Comment `protobuf:"bytes,15,rep,name=comments_list,json=commentsList,proto3" json:"comments_list,omitempty"`
}

func (m *Post) Reset()         { *m = Post{} }
func (m *Post) String() string { return fmt.Sprintf("%+v", *m) }
func (*Post) ProtoMessage()    {}

func (m *Post) GetCommentsList() []*Comment {
	if m == nil {
		return nil
	}
	return m.CommentsList
}

type AppendRequest struct {
	Post *Post `protobuf:"bytes,1,opt,name=post,proto3" json:"post,omitempty"`
}

func (m *AppendRequest) Reset()         { *m = AppendRequest{} }
func (m *AppendRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AppendRequest) ProtoMessage()    {}

func (m *AppendRequest) GetPost() *Post {
	if m == nil {
		return nil
	}
	return m.Post
}

type AppendResponse struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *AppendResponse) Reset()         { *m = AppendResponse{} }
func (m *AppendResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AppendResponse) ProtoMessage()    {}

// UpdateRequest pairs every value with a presence flag so zero values can
// still be applied.
type UpdateRequest struct {
	Id              string     `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HasLikes        bool       `protobuf:"varint,2,opt,name=has_likes,json=hasLikes,proto3" json:"has_likes,omitempty"`
	Likes           int64      `protobuf:"varint,3,opt,name=likes,proto3" json:"likes,omitempty"`
	HasIsLiked      bool       `protobuf:"varint,4,opt,name=has_is_liked,json=hasIsLiked,proto3" json:"has_is_liked,omitempty"`
	IsLiked         bool       `protobuf:"varint,5,opt,name=is_liked,json=isLiked,proto3" json:"is_liked,omitempty"`
	HasComments     bool       `protobuf:"varint,6,opt,name=has_comments,json=hasComments,proto3" json:"has_comments,omitempty"`
	Comments        int64      `protobuf:"varint,7,opt,name=comments,proto3" json:"comments,omitempty"`
	HasCommentsList bool       `protobuf:"varint,8,opt,name=has_comments_list,json=hasCommentsList,proto3" json:"has_comments_list,omitempty"`
	CommentsList    []*Comment `protobuf:"bytes,9,rep,name=comments_list,json=commentsList,proto3" json:"comments_list,omitempty"`
	HasContent      bool       `protobuf:"varint,10,opt,name=has_content,json=hasContent,proto3" json:"has_content,omitempty"`
	Content         string     `protobuf:"bytes,11,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *UpdateRequest) Reset()         { *m = UpdateRequest{} }
func (m *UpdateRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateRequest) ProtoMessage()    {}

type UpdateResponse struct{}

func (m *UpdateResponse) Reset()         { *m = UpdateResponse{} }
func (m *UpdateResponse) String() string { return "" }
func (*UpdateResponse) ProtoMessage()    {}

type DeleteRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteRequest) Reset()         { *m = DeleteRequest{} }
func (m *DeleteRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteRequest) ProtoMessage()    {}

type DeleteResponse struct{}

func (m *DeleteResponse) Reset()         { *m = DeleteResponse{} }
func (m *DeleteResponse) String() string { return "" }
func (*DeleteResponse) ProtoMessage()    {}

type SubscribeRequest struct{}

func (m *SubscribeRequest) Reset()         { *m = SubscribeRequest{} }
func (m *SubscribeRequest) String() string { return "" }
func (*SubscribeRequest) ProtoMessage()    {}

// FeedSnapshot is the full ordered feed, pushed on subscribe and after
// every change.
type FeedSnapshot struct {
	Posts []*Post `protobuf:"bytes,1,rep,name=posts,proto3" json:"posts,omitempty"`
}

func (m *FeedSnapshot) Reset()         { *m = FeedSnapshot{} }
func (m *FeedSnapshot) String() string { return fmt.Sprintf("%+v", *m) }
func (*FeedSnapshot) ProtoMessage()    {}

func (m *FeedSnapshot) GetPosts() []*Post {
	if m == nil {
		return nil
	}
	return m.Posts
}

type PingRequest struct{}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return "" }
func (*PingRequest) ProtoMessage()    {}

type PingResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *PingResponse) Reset()         { *m = PingResponse{} }
func (m *PingResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PingResponse) ProtoMessage()    {}

type GetUploadUrlRequest struct {
	FileName    string `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	ContentType string `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
}

func (m *GetUploadUrlRequest) Reset()         { *m = GetUploadUrlRequest{} }
func (m *GetUploadUrlRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetUploadUrlRequest) ProtoMessage()    {}

type GetUploadUrlResponse struct {
	Url       string `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	ObjectKey string `protobuf:"bytes,2,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
}

func (m *GetUploadUrlResponse) Reset()         { *m = GetUploadUrlResponse{} }
func (m *GetUploadUrlResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetUploadUrlResponse) ProtoMessage()    {}
