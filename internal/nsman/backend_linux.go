package nsman

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/vishvananda/netns"
	"golang.org/x/sys/unix"
)

// osBackend creates named network namespaces via the kernel, bind-mounted
// under /run/netns so iproute2 tooling can address them by name.
type osBackend struct{}

// OSBackend returns the real netns-backed Backend. It requires
// CAP_SYS_ADMIN and CAP_NET_ADMIN.
func OSBackend() Backend { return osBackend{} }

// Create makes a new named namespace. netns.NewNamed switches the calling
// thread into the new namespace, so the thread is locked and restored to
// its original namespace before returning.
func (osBackend) Create(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	orig, err := netns.Get()
	if err != nil {
		return fmt.Errorf("get current namespace: %w", err)
	}
	defer orig.Close()

	created, err := netns.NewNamed(name)
	if err != nil {
		// NewNamed cleans up its bind mount on failure; nothing to undo.
		return fmt.Errorf("create namespace %q: %w", name, err)
	}
	created.Close()

	if err := netns.Set(orig); err != nil {
		_ = netns.DeleteNamed(name)
		return fmt.Errorf("restore original namespace: %w", err)
	}
	return nil
}

// Delete removes the named namespace. A missing namespace is not an error,
// which is what makes manager teardown idempotent end to end.
func (osBackend) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := netns.DeleteNamed(name); err != nil && !errors.Is(err, unix.ENOENT) {
		return fmt.Errorf("delete namespace %q: %w", name, err)
	}
	return nil
}
