package snapshot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	lastCT  string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(v))}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = b
	f.lastCT = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Backend_MissingObjectIsEmpty(t *testing.T) {
	b := NewS3Backend(newFakeObjects(), "chat", "state/")

	data, ok, err := b.Load(context.Background(), Users)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestS3Backend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	objs := newFakeObjects()
	b := NewS3Backend(objs, "chat", "state/")

	require.NoError(t, b.Save(ctx, Context, []byte(`{"a":1}`)))
	assert.Contains(t, objs.objects, "chat/state/context.json")
	assert.Equal(t, "application/json", objs.lastCT)

	data, ok, err := b.Load(ctx, Context)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(data))
}

func TestS3Backend_Errors(t *testing.T) {
	ctx := context.Background()
	objs := newFakeObjects()
	objs.getErr = errors.New("denied")
	objs.putErr = errors.New("denied")
	b := NewS3Backend(objs, "chat", "")

	_, _, err := b.Load(ctx, Users)
	require.ErrorContains(t, err, "users.json")

	err = b.Save(ctx, Users, []byte("{}"))
	require.ErrorContains(t, err, "denied")
}
