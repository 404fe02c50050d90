// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object storage client for the
// section image buckets. It wraps the AWS SDK v2 and is configured for
// path-style access so it works against MinIO/CEPH-style endpoints.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Per-domain public buckets. Each image-bearing domain uploads into its
// own bucket.
const (
	BucketAbout    = "about-images"
	BucketProjects = "projects-images"
	BucketCourses  = "courses-images"
)

// Client wraps an S3 client for the public image buckets.
type Client struct {
	s3        *s3.Client
	endpoint  string
	publicURL string // optional CDN/direct URL prefix for public files
}

// New creates an S3 storage client with static credentials and path-style
// addressing. Returns (nil, nil) if endpoint or credentials are empty,
// allowing the app to start without storage (uploads disabled).
func New(endpoint, region, accessKey, secretKey, publicURL string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores an object in the given bucket with a public-read ACL and
// returns the public URL to store in the item's image field.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", bucket, key, err)
	}
	return c.FileURL(bucket, key), nil
}

// Delete removes an object from the given bucket.
func (c *Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL for a file in the given bucket.
// Uses the configured public URL prefix if set, otherwise builds a
// path-style URL against the endpoint.
func (c *Client) FileURL(bucket, key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + bucket + "/" + key
	}
	return c.endpoint + "/" + bucket + "/" + key
}

// ExtractKey extracts the bucket and object key from a public file URL.
// Returns ("", "", false) if the URL does not belong to this storage.
// Used to clean up the backing object when an item is deleted.
func (c *Client) ExtractKey(rawURL string) (bucket, key string, ok bool) {
	for _, prefix := range []string{c.publicURL, c.endpoint} {
		if prefix == "" {
			continue
		}
		rest, found := strings.CutPrefix(rawURL, prefix+"/")
		if !found {
			continue
		}
		bucket, key, found = strings.Cut(rest, "/")
		if found && key != "" {
			return bucket, key, true
		}
	}
	return "", "", false
}
