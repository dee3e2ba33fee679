package viewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Bucket struct {
	client     *minio.Client
	bucketName string
}

// OpenBucket connects to the S3-compatible bucket described by the given
// environment variable, in host:key:secret:bucket form.
func OpenBucket(envvar string) (*Bucket, error) {
	config := strings.Split(os.Getenv(envvar), ":")
	if len(config) != 4 {
		return nil, fmt.Errorf("could not find/parse %s", envvar)
	}

	client, err := minio.New(config[0], &minio.Options{
		Creds:  credentials.NewStaticV4(config[1], config[2], ""),
		Secure: true,
	})
	if err != nil {
		return nil, err
	}

	bucket := Bucket{client, config[3]}
	if err := bucket.CheckBucket(); err != nil {
		return nil, err
	}
	return &bucket, nil
}

func (b *Bucket) CheckBucket() error {
	ok, err := b.client.BucketExists(context.Background(), b.bucketName)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("no such bucket: %s", b.bucketName)
	}
	return nil
}

// Sync downloads every container at the bucket root into the local directory.
// Files whose size already matches are skipped.
func (b *Bucket) Sync(dir string) error {
	ctx := context.Background()
	for obj := range b.client.ListObjects(ctx, b.bucketName,
		minio.ListObjectsOptions{Recursive: true}) {

		if obj.Err != nil {
			return obj.Err
		}
		if strings.Contains(obj.Key, "/") {
			// Containers live at the bucket root
			continue
		}

		local := filepath.Join(dir, obj.Key)
		if info, err := os.Stat(local); err == nil && info.Size() == obj.Size {
			continue
		}
		fmt.Printf("Fetching %q\n", obj.Key)
		err := b.client.FGetObject(ctx, b.bucketName, obj.Key, local,
			minio.GetObjectOptions{})
		if err != nil {
			return err
		}
	}
	return nil
}
