package dialog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axlwolf/task-manager/internal/app/dialog"
)

type fakeContent struct {
	mountErr     error
	closeOnMount any
	ref          *dialog.Ref
	destroyed    int
}

func (c *fakeContent) Kind() dialog.Kind { return "fake" }

func (c *fakeContent) Mount(ref *dialog.Ref) error {
	if c.mountErr != nil {
		return c.mountErr
	}
	c.ref = ref
	if c.closeOnMount != nil {
		ref.Close(c.closeOnMount)
	}
	return nil
}

func (c *fakeContent) Destroy() { c.destroyed++ }

func openFake(t *testing.T, cfg dialog.Config) (*dialog.Ref, *fakeContent, *dialog.Outlet) {
	t.Helper()
	content := &fakeContent{}
	outlet := dialog.NewOutlet()
	ref, err := dialog.NewService(nil).Open(func() dialog.Content { return content }, cfg, outlet)
	require.NoError(t, err)
	return ref, content, outlet
}

func TestOpen_MountsContentWithBackReference(t *testing.T) {
	ref, content, outlet := openFake(t, dialog.DefaultConfig())

	require.Same(t, ref, content.ref)
	shell, ok := outlet.Get(ref.ID())
	require.True(t, ok)
	require.Same(t, content, shell.Content())
	require.Len(t, outlet.List(), 1)
}

func TestOpen_NormalizesConfig(t *testing.T) {
	ref, _, outlet := openFake(t, dialog.Config{Size: "huge"})

	shell, ok := outlet.Get(ref.ID())
	require.True(t, ok)
	cfg := shell.Config()
	require.Equal(t, "Dialog", cfg.Title)
	require.Equal(t, dialog.SizeMedium, cfg.Size)
	require.Equal(t, "dialog-md", cfg.Size.Class())
	require.Equal(t, "Confirm", cfg.ConfirmText)
	require.Equal(t, "Cancel", cfg.CancelText)
}

func TestOpen_WithoutAnchorDeclines(t *testing.T) {
	called := false
	ref, err := dialog.NewService(nil).Open(func() dialog.Content {
		called = true
		return &fakeContent{}
	}, dialog.DefaultConfig(), nil)

	require.ErrorIs(t, err, dialog.ErrAnchorMissing)
	require.Nil(t, ref)
	require.False(t, called)
}

func TestOpen_MountFailureDetachesShell(t *testing.T) {
	outlet := dialog.NewOutlet()
	boom := errors.New("boom")

	ref, err := dialog.NewService(nil).Open(func() dialog.Content {
		return &fakeContent{mountErr: boom}
	}, dialog.DefaultConfig(), outlet)

	require.ErrorIs(t, err, boom)
	require.Nil(t, ref)
	require.Empty(t, outlet.List())
}

func TestOpen_CloseDuringMountTearsDown(t *testing.T) {
	outlet := dialog.NewOutlet()
	content := &fakeContent{closeOnMount: "early"}

	ref, err := dialog.NewService(nil).Open(func() dialog.Content { return content }, dialog.DefaultConfig(), outlet)
	require.NoError(t, err)
	require.True(t, ref.Closed())
	require.Equal(t, "early", ref.Result())
	require.Equal(t, 1, content.destroyed)
	require.Empty(t, outlet.List())

	ref.Close("late")
	require.Equal(t, 1, content.destroyed)
	require.Equal(t, "early", ref.Result())
}

func TestOpen_NilContent(t *testing.T) {
	outlet := dialog.NewOutlet()

	_, err := dialog.NewService(nil).Open(func() dialog.Content { return nil }, dialog.DefaultConfig(), outlet)
	require.ErrorIs(t, err, dialog.ErrNoContent)
	require.Empty(t, outlet.List())
}

func TestRef_CloseIsIdempotent(t *testing.T) {
	ref, content, outlet := openFake(t, dialog.DefaultConfig())

	notifications := 0
	var got any
	ref.AfterClosed(func(result any) {
		notifications++
		got = result
	})

	ref.Close("x")
	ref.Close("y")

	require.Equal(t, 1, notifications)
	require.Equal(t, "x", got)
	require.Equal(t, "x", ref.Result())
	require.True(t, ref.Closed())
	require.Equal(t, 1, content.destroyed)
	require.Empty(t, outlet.List())

	select {
	case <-ref.Done():
	default:
		t.Fatal("done channel should be closed")
	}
}

func TestRef_AfterClosedOnClosedDialogRunsImmediately(t *testing.T) {
	ref, _, _ := openFake(t, dialog.DefaultConfig())
	ref.Close(nil)

	ran := false
	ref.AfterClosed(func(result any) {
		ran = true
		require.Nil(t, result)
	})
	require.True(t, ran)
}

func TestShell_ConfirmAndCancel(t *testing.T) {
	ref, _, outlet := openFake(t, dialog.DefaultConfig())
	shell, _ := outlet.Get(ref.ID())

	shell.Confirm()
	shell.Cancel()
	require.Equal(t, true, ref.Result())

	ref, _, outlet = openFake(t, dialog.DefaultConfig())
	shell, _ = outlet.Get(ref.ID())
	shell.Cancel()
	require.True(t, ref.Closed())
	require.Nil(t, ref.Result())
}

func TestShell_EscapeAndBackdropHonourConfig(t *testing.T) {
	cfg := dialog.DefaultConfig()
	cfg.CloseOnBackdropClick = false
	ref, _, outlet := openFake(t, cfg)
	shell, _ := outlet.Get(ref.ID())

	require.False(t, shell.BackdropClick())
	require.False(t, ref.Closed())

	require.True(t, shell.Escape())
	require.True(t, ref.Closed())
}

func TestOutlet_ListKeepsAttachOrder(t *testing.T) {
	outlet := dialog.NewOutlet()
	service := dialog.NewService(nil)
	factory := func() dialog.Content { return &fakeContent{} }

	first, err := service.Open(factory, dialog.DefaultConfig(), outlet)
	require.NoError(t, err)
	second, err := service.Open(factory, dialog.DefaultConfig(), outlet)
	require.NoError(t, err)
	third, err := service.Open(factory, dialog.DefaultConfig(), outlet)
	require.NoError(t, err)

	second.Close(nil)

	shells := outlet.List()
	require.Len(t, shells, 2)
	require.Equal(t, first.ID(), shells[0].ID())
	require.Equal(t, third.ID(), shells[1].ID())
}
