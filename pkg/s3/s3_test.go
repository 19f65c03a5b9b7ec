package s3

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

func newOfflineClient(t *testing.T, cfg *aws.Config) *Client {
	t.Helper()
	cfg.Credentials = credentials.NewStaticCredentials("id", "secret", "")
	sess := session.Must(session.NewSession(cfg))
	return &Client{s3Client: s3.New(sess), bucket: "board"}
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("Sunset.JPG")
	assert.True(t, strings.HasPrefix(key, "posts/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, ObjectKey("Sunset.JPG"))
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := ObjectKey("blob")
	assert.True(t, strings.HasPrefix(key, "posts/"))
	assert.NotContains(t, strings.TrimPrefix(key, "posts/"), ".")
}

func TestObjectURL_AWS(t *testing.T) {
	client := newOfflineClient(t, &aws.Config{Region: aws.String("eu-west-1")})
	assert.Equal(t, "https://board.s3.eu-west-1.amazonaws.com/posts/a.png", client.objectURL("posts/a.png"))
}

func TestObjectURL_MinIO(t *testing.T) {
	client := newOfflineClient(t, &aws.Config{
		Region:           aws.String("us-east-1"),
		Endpoint:         aws.String("http://minio:9000"),
		S3ForcePathStyle: aws.Bool(true),
		DisableSSL:       aws.Bool(true),
	})
	assert.Equal(t, "http://minio:9000/board/posts/a.png", client.objectURL("posts/a.png"))
}
