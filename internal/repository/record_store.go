package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	s3config "github.com/vishnukant5129/AI-vs-Real-Image/internal/config"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/domain"
)

const recordPrefix = "analyses/"

// RecordStore persists analysis results and serves the history query.
// The analysis path treats it as best-effort: an unavailable store must
// never fail an analysis.
type RecordStore interface {
	// Save persists the result and returns the identity assigned to it.
	Save(ctx context.Context, result *domain.AnalysisResult) (string, error)
	// History returns up to limit previously stored results,
	// newest-first.
	History(ctx context.Context, limit int) ([]domain.AnalysisResult, error)
	// Available probes whether the store is reachable right now.
	Available(ctx context.Context) bool
}

type s3RecordStore struct {
	client *s3.Client
	cfg    *s3config.S3Config
	log    *zap.Logger
}

func NewS3RecordStore(cfg *s3config.S3Config, log *zap.Logger) (RecordStore, error) {
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
				Source:            aws.EndpointSourceCustom,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	store := &s3RecordStore{
		client: client,
		cfg:    cfg,
		log:    log,
	}

	if err := store.ensureBucketExists(context.Background()); err != nil {
		log.Warn("Failed to ensure bucket exists", zap.Error(err))
	}

	return store, nil
}

func (r *s3RecordStore) ensureBucketExists(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.cfg.BucketName),
	})
	if err == nil {
		return nil
	}

	r.log.Info("Creating bucket", zap.String("bucket", r.cfg.BucketName))

	_, err = r.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(r.cfg.BucketName),
		CreateBucketConfiguration: &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(r.cfg.Region),
		},
	})
	if err != nil {
		return err
	}

	r.log.Info("Bucket created successfully", zap.String("bucket", r.cfg.BucketName))
	return nil
}

// recordKey encodes the creation time inverted so the store lists keys
// newest-first without any client-side sorting.
func recordKey(createdAt time.Time, id string) string {
	return fmt.Sprintf("%s%020d-%s.json", recordPrefix, math.MaxInt64-createdAt.UnixNano(), id)
}

func (r *s3RecordStore) Save(ctx context.Context, result *domain.AnalysisResult) (string, error) {
	id := uuid.New().String()

	record := *result
	record.ID = id

	body, err := json.Marshal(&record)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis record: %w", err)
	}

	key := recordKey(record.CreatedAt, id)
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.cfg.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		r.log.Error("Failed to store analysis record",
			zap.String("key", key),
			zap.Error(err))
		return "", err
	}

	r.log.Info("Analysis record stored",
		zap.String("id", id),
		zap.String("key", key),
		zap.String("result", string(record.Verdict)))

	return id, nil
}

func (r *s3RecordStore) History(ctx context.Context, limit int) ([]domain.AnalysisResult, error) {
	listed, err := r.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(r.cfg.BucketName),
		Prefix:  aws.String(recordPrefix),
		MaxKeys: aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis records: %w", err)
	}

	results := make([]domain.AnalysisResult, 0, len(listed.Contents))
	for _, obj := range listed.Contents {
		record, err := r.fetchRecord(ctx, *obj.Key)
		if err != nil {
			r.log.Warn("Skipping unreadable analysis record",
				zap.String("key", *obj.Key),
				zap.Error(err))
			continue
		}
		results = append(results, *record)
	}
	return results, nil
}

func (r *s3RecordStore) fetchRecord(ctx context.Context, key string) (*domain.AnalysisResult, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.cfg.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}

	var record domain.AnalysisResult
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("malformed analysis record: %w", err)
	}
	return &record, nil
}

func (r *s3RecordStore) Available(ctx context.Context) bool {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.cfg.BucketName),
	})
	return err == nil
}
