package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploader_Upload(t *testing.T) {
	fp := &fakePutter{}
	u := NewUploaderWithClient(fp, "bobis-reports", "us-east-1")

	url, err := u.Upload(context.Background(), bytes.NewReader([]byte("%PDF-1.3")), "despachos/despacho-12.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "https://bobis-reports.s3.us-east-1.amazonaws.com/despachos/despacho-12.pdf", url)
	assert.Equal(t, "bobis-reports", aws.ToString(fp.input.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(fp.input.ContentType))
	assert.Equal(t, []byte("%PDF-1.3"), fp.body)
}

func TestUploader_UploadError(t *testing.T) {
	u := NewUploaderWithClient(&fakePutter{err: errors.New("access denied")}, "b", "r")

	_, err := u.Upload(context.Background(), bytes.NewReader(nil), "k", "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
