package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

// fakeReader 依次返回预置消息，取完后阻塞到 ctx 取消
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	drained   chan struct{}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.msgs) > 0 {
		m := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()
	close(r.drained)
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestSendDownloadTask_NotInitialized(t *testing.T) {
	producer = nil
	err := SendDownloadTask(context.Background(), "downloads", &DownloadTask{PhotoID: "p1"})
	assert.ErrorIs(t, err, ErrProducerNotInitialized)
	assert.NoError(t, CloseProducer())
}

func TestSendDownloadTask_KeyedByPhoto(t *testing.T) {
	w := &fakeWriter{}
	producer = w
	t.Cleanup(func() { producer = nil })

	task := &DownloadTask{TaskID: "t1", PhotoID: "p1", Quality: "full", URL: "https://images.example/p1"}
	require.NoError(t, SendDownloadTask(context.Background(), "downloads", task))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "downloads", msg.Topic)
	assert.Equal(t, "p1", string(msg.Key))
	assert.Equal(t, []kafka.Header{
		{Key: "task_id", Value: []byte("t1")},
		{Key: "quality", Value: []byte("full")},
	}, msg.Headers)

	decoded, err := DecodeDownloadTask(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, task.URL, decoded.URL)

	require.NoError(t, CloseProducer())
	assert.True(t, w.closed)
}

func TestSendDownloadTask_WriteError(t *testing.T) {
	producer = &fakeWriter{err: errors.New("broker down")}
	t.Cleanup(func() { producer = nil })

	err := SendDownloadTask(context.Background(), "downloads", &DownloadTask{PhotoID: "p1"})
	assert.ErrorContains(t, err, "broker down")
}

func TestDecodeDownloadTask(t *testing.T) {
	_, err := DecodeDownloadTask([]byte("{"))
	assert.Error(t, err)

	_, err = DecodeDownloadTask([]byte(`{"photo_id":"p1"}`))
	assert.Error(t, err)

	task, err := DecodeDownloadTask([]byte(`{"task_id":"t1","photo_id":"p1","quality":"raw","url":"u"}`))
	require.NoError(t, err)
	assert.Equal(t, "p1/raw-t1.jpg", task.ObjectName())
}

func TestConsumeDownloads_CommitsEveryMessage(t *testing.T) {
	good, _ := json.Marshal(DownloadTask{TaskID: "t1", PhotoID: "p1", URL: "u"})
	failing, _ := json.Marshal(DownloadTask{TaskID: "t2", PhotoID: "p2", URL: "u"})
	reader := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 1, Value: good},
			{Offset: 2, Value: []byte("not json")},
			{Offset: 3, Value: failing},
		},
		drained: make(chan struct{}),
	}

	var handled []string
	handler := func(_ context.Context, task *DownloadTask) error {
		handled = append(handled, task.TaskID)
		if task.TaskID == "t2" {
			return errors.New("upload failed")
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumeDownloads(ctx, reader, handler)
		close(done)
	}()

	<-reader.drained
	cancel()
	<-done

	assert.Equal(t, []string{"t1", "t2"}, handled)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}
