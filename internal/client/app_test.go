package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.calls++
	return f.err
}

type fakeCloser struct {
	closed bool
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "clean exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: context.Canceled},
		{name: "ui failure", uiErr: errors.New("terminal gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			store := &fakeCloser{err: errors.New("already closed")}

			app, err := NewApp(ui, logger.Nop(), store)
			require.NoError(t, err)

			err = app.run(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
			assert.True(t, store.closed)
		})
	}
}
