package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storekeeper/internal/client/conflict"
	"github.com/iudanet/storekeeper/internal/client/iocli"
	"github.com/iudanet/storekeeper/internal/models"
)

// newTestIO возвращает IO мок, который копит вывод в builder
// и выдает заранее подготовленные ответы пользователя
func newTestIO(answers ...string) (*iocli.IOMock, *strings.Builder) {
	var out strings.Builder
	i := 0
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.WriteString(fmt.Sprintf(format, a...))
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if i >= len(answers) {
				return "", fmt.Errorf("no more answers")
			}
			answer := answers[i]
			i++
			return answer, nil
		},
	}
	return mock, &out
}

func testConflict() *models.Conflict {
	return &models.Conflict{
		UpdateID:        3,
		OwnerID:         "store_owner",
		LocalData:       map[string]any{"shop_name": "Local Name"},
		ServerData:      map[string]any{"shop_name": "Server Name"},
		LocalTimestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ServerTimestamp: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestPresenter_KeepLocal(t *testing.T) {
	io, out := newTestIO("l")
	p := NewPresenter(io)

	res, err := p.Present(context.Background(), testConflict())

	require.NoError(t, err)
	assert.Equal(t, models.ActionUseLocal, res.Action)
	assert.Equal(t, "Local Name", res.Data["shop_name"])
	assert.Contains(t, out.String(), "Local version")
	assert.Contains(t, out.String(), "Server version")
}

func TestPresenter_KeepServer(t *testing.T) {
	io, _ := newTestIO("server")
	p := NewPresenter(io)

	res, err := p.Present(context.Background(), testConflict())

	require.NoError(t, err)
	assert.Equal(t, models.ActionUseServer, res.Action)
	assert.Equal(t, "Server Name", res.Data["shop_name"])
}

func TestPresenter_Cancel(t *testing.T) {
	io, _ := newTestIO("c")
	p := NewPresenter(io)

	res, err := p.Present(context.Background(), testConflict())

	require.ErrorIs(t, err, conflict.ErrResolutionCancelled)
	assert.Nil(t, res)
}

func TestPresenter_EmptyAnswerCancels(t *testing.T) {
	io, _ := newTestIO("")
	p := NewPresenter(io)

	_, err := p.Present(context.Background(), testConflict())

	require.ErrorIs(t, err, conflict.ErrResolutionCancelled)
}

func TestPresenter_RetriesOnUnknownAnswer(t *testing.T) {
	io, out := newTestIO("what", "s")
	p := NewPresenter(io)

	res, err := p.Present(context.Background(), testConflict())

	require.NoError(t, err)
	assert.Equal(t, models.ActionUseServer, res.Action)
	assert.Contains(t, out.String(), "Unknown answer")
}
