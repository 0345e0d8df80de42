package api

import (
	"testing"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreadResponse(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	detail := domain.ThreadDetail{
		Thread: domain.Thread{Id: "thread-1", Title: "title", Body: "body", Owner: "user-1", Date: now},
		Comments: []domain.Comment{
			{Id: "comments-2", Content: "gone", ThreadId: "thread-1", Owner: "user-2", Date: now.Add(time.Minute), Deleted: true},
			{Id: "comments-1", Content: "still here", ThreadId: "thread-1", Owner: "user-1", Date: now},
		},
	}

	t.Run("unmasked keeps deleted content", func(t *testing.T) {
		resp := NewThreadResponse(detail, false)
		require.Len(t, resp.Thread.Comments, 2)
		assert.Equal(t, "gone", resp.Thread.Comments[0].Content)
		assert.True(t, resp.Thread.Comments[0].Deleted)
		assert.Equal(t, "comments-1", resp.Thread.Comments[1].Id)
	})

	t.Run("masked replaces deleted content only", func(t *testing.T) {
		resp := NewThreadResponse(detail, true)
		require.Len(t, resp.Thread.Comments, 2)
		assert.Equal(t, DeletedCommentPlaceholder, resp.Thread.Comments[0].Content)
		assert.Equal(t, "still here", resp.Thread.Comments[1].Content)
	})

	t.Run("no comments encodes as empty list", func(t *testing.T) {
		resp := NewThreadResponse(domain.ThreadDetail{Thread: detail.Thread}, false)
		assert.NotNil(t, resp.Thread.Comments)
		assert.Empty(t, resp.Thread.Comments)
		assert.Equal(t, "thread-1", resp.Thread.Id)
	})
}
