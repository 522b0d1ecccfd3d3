package feed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kisalay21/familytree/internal/dbx"
	sc "github.com/Kisalay21/familytree/internal/server/config"
	"github.com/Kisalay21/familytree/internal/server/models"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Service owns the feed: every mutation runs in a transaction and ends
// with a fresh ordered snapshot broadcast over the hub.
type Service struct {
	db     *sql.DB
	hub    *Hub
	config *sc.Config
}

func NewService(db *sql.DB, hub *Hub, config *sc.Config) *Service {
	return &Service{db: db, hub: hub, config: config}
}

func (s *Service) Hub() *Hub {
	return s.hub
}

// Append stores a new post and returns its id. A missing id is assigned
// server-side.
func (s *Service) Append(ctx context.Context, post *models.Post) (string, error) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.CommentsList == nil {
		post.CommentsList = []models.Comment{}
	}

	repo := NewPostgresRepository(s.db)
	if err := repo.Insert(ctx, post); err != nil {
		return "", err
	}

	s.broadcast(ctx)
	return post.ID, nil
}

// Update applies a patch to a post. An unknown id is a silent no-op, so
// stale clients never fail on records that were already deleted.
func (s *Service) Update(ctx context.Context, id string, patch models.PostPatch) error {

	changed := false

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewPostgresRepository(tx)

		post, ok, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		patch.Apply(post)
		changed = true
		return repo.Update(ctx, post)
	})
	if err != nil {
		return fmt.Errorf("error updating post: %v", err)
	}

	if changed {
		s.broadcast(ctx)
	}
	return nil
}

// Delete removes a post. An unknown id is a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	repo := NewPostgresRepository(s.db)

	removed, err := repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		s.broadcast(ctx)
	}
	return nil
}

// List returns the current ordered snapshot.
func (s *Service) List(ctx context.Context) ([]models.Post, error) {
	return NewPostgresRepository(s.db).List(ctx)
}

func (s *Service) broadcast(ctx context.Context) {
	posts, err := s.List(ctx)
	if err != nil {
		return
	}
	s.hub.Broadcast(posts)
}

// GetRandomStorageKey produces the object key for one uploaded payload.
func GetRandomStorageKey(fileName string) string {
	d := time.Now()
	return fmt.Sprintf("memories/%d/%d/%d/%v-%s", d.Year(), d.Month(), d.Day(), uuid.New(), fileName)
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutURL returns a presigned upload URL and the object key the
// payload will land under.
func (s *Service) GetPresignedPutURL(ctx context.Context, fileName, contentType string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(fileName)

	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		in.ContentType = &contentType
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return req.URL, key, nil
}
