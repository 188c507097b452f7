package export

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/featuregrid/internal/errors"
)

// Target is a parsed export destination: a directory, or an S3 bucket
// and key prefix.
type Target struct {
	Dir    string
	Bucket string
	Prefix string
}

// IsS3 reports whether t names a bucket.
func (t Target) IsS3() bool {
	return t.Bucket != ""
}

func (t Target) String() string {
	if t.IsS3() {
		return "s3://" + t.Bucket + "/" + t.Prefix
	}
	return t.Dir
}

// ParseTarget parses "s3://bucket/prefix" or a directory path.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, errors.New("E401").WithDetail("empty export target")
	}

	rest, ok := strings.CutPrefix(s, "s3://")
	if !ok {
		return Target{Dir: s}, nil
	}

	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Target{}, errors.New("E401").
			WithDetailf("no bucket in %q", s).
			WithExample("featuregrid export s3://marketing-previews/grids/")
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return Target{Bucket: bucket, Prefix: prefix}, nil
}

// NewSink opens the sink for t. region is used for S3 targets and may be
// empty to use the environment's default.
func NewSink(ctx context.Context, t Target, region string) (Sink, error) {
	if !t.IsS3() {
		return NewDirSink(t.Dir), nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E403").WithDetail("loading AWS configuration").Wrap(err)
	}
	return NewS3Sink(s3.NewFromConfig(cfg), t.Bucket, t.Prefix), nil
}

// DirSink writes files into a local directory, creating it if needed.
type DirSink struct {
	dir string
}

// NewDirSink creates a DirSink for dir.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

func (s *DirSink) Put(_ context.Context, name, _ string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.New("E402").WithDetailf("creating %s", s.dir).Wrap(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return errors.New("E402").WithDetailf("writing %s", name).Wrap(err)
	}
	return nil
}

func (s *DirSink) Location(name string) string {
	return filepath.Join(s.dir, name)
}

// PutObjectAPI is the part of the S3 client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads files to bucket under prefix.
type S3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Sink creates an S3Sink. prefix is prepended to every key as is.
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Sink) Put(ctx context.Context, name, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String("no-cache"),
	})
	if err != nil {
		return errors.New("E403").WithDetailf("uploading %s", s.Location(name)).Wrap(err)
	}
	return nil
}

func (s *S3Sink) Location(name string) string {
	return "s3://" + s.bucket + "/" + s.key(name)
}

func (s *S3Sink) key(name string) string {
	return path.Join(s.prefix, name)
}
