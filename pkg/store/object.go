package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/joshuapare/rcolkit/pkg/tgi"
	"github.com/joshuapare/rcolkit/pkg/types"
)

// ObjectClient is the subset of the minio client the object store uses.
type ObjectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// NewObjectClient builds a minio client from cfg. The client connects
// lazily; the first operation surfaces bad credentials or endpoints.
func NewObjectClient(cfg ObjectConfig) (ObjectClient, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: timeout,
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("store: minio client: %w", err)
	}
	return &minioClient{Client: mc}, nil
}

type minioClient struct {
	*minio.Client
}

func (c *minioClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// Object is a Store over an S3-compatible bucket. Each container is one
// object named Prefix + key.String().
type Object struct {
	client ObjectClient
	bucket string
	prefix string
}

var _ Store = (*Object)(nil)

// NewObject returns a store over bucket. It does not touch the network.
func NewObject(client ObjectClient, bucket, prefix string) *Object {
	return &Object{client: client, bucket: bucket, prefix: prefix}
}

// EnsureBucket creates the bucket when it does not exist.
func (o *Object) EnsureBucket(ctx context.Context, region string) error {
	ok, err := o.client.BucketExists(ctx, o.bucket)
	if err != nil {
		return fmt.Errorf("store: bucket %s: %w", o.bucket, err)
	}
	if ok {
		return nil
	}
	if err := o.client.MakeBucket(ctx, o.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("store: make bucket %s: %w", o.bucket, err)
	}
	return nil
}

func (o *Object) name(key tgi.Key) string { return o.prefix + key.String() }

func (o *Object) Get(ctx context.Context, key tgi.Key) ([]byte, error) {
	rc, err := o.client.GetObject(ctx, o.bucket, o.name(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, o.wrap(key, err)
	}
	defer rc.Close()
	// minio defers the request until the first read.
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, o.wrap(key, err)
	}
	return data, nil
}

func (o *Object) Put(ctx context.Context, key tgi.Key, data []byte) error {
	_, err := o.client.PutObject(ctx, o.bucket, o.name(key), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return o.wrap(key, err)
	}
	return nil
}

func (o *Object) Delete(ctx context.Context, key tgi.Key) error {
	// S3 deletes are idempotent, so existence is checked first.
	if _, err := o.Get(ctx, key); err != nil {
		return err
	}
	if err := o.client.RemoveObject(ctx, o.bucket, o.name(key), minio.RemoveObjectOptions{}); err != nil {
		return o.wrap(key, err)
	}
	return nil
}

// Keys lists the bucket under the prefix. Objects whose names are not keys
// are skipped.
func (o *Object) Keys(ctx context.Context) ([]tgi.Key, error) {
	var keys []tgi.Key
	for info := range o.client.ListObjects(ctx, o.bucket, minio.ListObjectsOptions{Prefix: o.prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("store: list %s: %w", o.bucket, info.Err)
		}
		k, err := tgi.Parse(strings.TrimPrefix(info.Key, o.prefix))
		if err != nil {
			continue
		}
		keys = append(keys, k)
	}
	tgi.Sort(keys)
	return keys, nil
}

func (o *Object) wrap(key tgi.Key, err error) error {
	if isNoSuchKey(err) {
		return &types.Error{Kind: types.ErrKindNotFound, Offset: types.NoOffset, Msg: "resource " + key.String() + " not found", Err: err}
	}
	return fmt.Errorf("store: %s/%s: %w", o.bucket, o.name(key), err)
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey"
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
