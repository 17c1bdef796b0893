package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"profile-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectScheme prefixes inventory sources stored in object storage.
const ObjectScheme = "s3://"

// LoadFile reads and parses a local inventory file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory %s: %w", path, err)
	}
	return Parse(path, data)
}

// LoadObject reads and parses an inventory stored as an object.
func LoadObject(ctx context.Context, client storage.Client, bucket, key string) (*Document, error) {
	name := ObjectScheme + bucket + "/" + key

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("reading inventory %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("reading inventory %s: %w", name, err)
	}
	return Parse(name, data)
}

// SplitObjectSource splits "s3://bucket/key" into its bucket and key.
// ok is false when source does not use the object scheme.
func SplitObjectSource(source string) (bucket, key string, ok bool, err error) {
	rest, found := strings.CutPrefix(source, ObjectScheme)
	if !found {
		return "", "", false, nil
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", true, fmt.Errorf("invalid inventory source %q: want %sbucket/key", source, ObjectScheme)
	}
	return bucket, key, true, nil
}

// Load reads every source in order. client is only needed for object sources
// and may be nil otherwise.
func Load(ctx context.Context, sources []string, client storage.Client) ([]*Document, error) {
	docs := make([]*Document, 0, len(sources))
	for _, source := range sources {
		bucket, key, isObject, err := SplitObjectSource(source)
		if err != nil {
			return nil, err
		}

		var doc *Document
		if isObject {
			if client == nil {
				return nil, errors.New("inventory " + source + " needs object storage, but no storage client is configured")
			}
			doc, err = LoadObject(ctx, client, bucket, key)
		} else {
			doc, err = LoadFile(source)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
