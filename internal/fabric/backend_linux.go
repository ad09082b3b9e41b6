package fabric

import (
	"context"
	"errors"
	"fmt"

	"github.com/packetforge/netemd/model"
	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"
	"golang.org/x/sys/unix"
)

// osBackend drives the kernel's veth, bridge, and qdisc primitives through
// rtnetlink. It requires CAP_NET_ADMIN.
type osBackend struct{}

// OSBackend returns the real netlink-backed Backend.
func OSBackend() Backend { return osBackend{} }

// withHandle runs fn with a netlink handle scoped to the named namespace,
// or to the daemon's own namespace when nsName is empty.
func withHandle(nsName string, fn func(*netlink.Handle) error) error {
	if nsName == "" {
		h, err := netlink.NewHandle()
		if err != nil {
			return err
		}
		defer h.Close()
		return fn(h)
	}

	nsh, err := netns.GetFromName(nsName)
	if err != nil {
		return fmt.Errorf("open namespace %q: %w", nsName, err)
	}
	defer nsh.Close()

	h, err := netlink.NewHandleAt(nsh)
	if err != nil {
		return fmt.Errorf("netlink handle for %q: %w", nsName, err)
	}
	defer h.Close()
	return fn(h)
}

func (osBackend) CreateVethPair(ctx context.Context, a, b string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	veth := &netlink.Veth{
		LinkAttrs: netlink.LinkAttrs{Name: a},
		PeerName:  b,
	}
	if err := netlink.LinkAdd(veth); err != nil {
		return fmt.Errorf("create veth %s/%s: %w", a, b, err)
	}
	return nil
}

func (osBackend) MoveAndRename(ctx context.Context, ifName, nsName, newName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	link, err := netlink.LinkByName(ifName)
	if err != nil {
		return fmt.Errorf("find %q: %w", ifName, err)
	}

	nsh, err := netns.GetFromName(nsName)
	if err != nil {
		return fmt.Errorf("open namespace %q: %w", nsName, err)
	}
	defer nsh.Close()

	if err := netlink.LinkSetNsFd(link, int(nsh)); err != nil {
		return fmt.Errorf("move %q into %q: %w", ifName, nsName, err)
	}

	return withHandle(nsName, func(h *netlink.Handle) error {
		moved, err := h.LinkByName(ifName)
		if err != nil {
			return fmt.Errorf("find %q in %q: %w", ifName, nsName, err)
		}
		if err := h.LinkSetName(moved, newName); err != nil {
			return fmt.Errorf("rename %q to %q: %w", ifName, newName, err)
		}
		return nil
	})
}

func (osBackend) SetUp(ctx context.Context, nsName, ifName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return withHandle(nsName, func(h *netlink.Handle) error {
		link, err := h.LinkByName(ifName)
		if err != nil {
			return err
		}
		return h.LinkSetUp(link)
	})
}

func (osBackend) AddAddress(ctx context.Context, nsName, ifName, cidr string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr, err := netlink.ParseAddr(cidr)
	if err != nil {
		return fmt.Errorf("parse address %q: %w", cidr, err)
	}
	return withHandle(nsName, func(h *netlink.Handle) error {
		link, err := h.LinkByName(ifName)
		if err != nil {
			return err
		}
		return h.AddrAdd(link, addr)
	})
}

// ApplyShaping installs the whole parameter set as a single netem qdisc
// replace, which is what makes Reshape atomic per interface.
func (osBackend) ApplyShaping(ctx context.Context, nsName, ifName string, sh model.Shaping) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return withHandle(nsName, func(h *netlink.Handle) error {
		link, err := h.LinkByName(ifName)
		if err != nil {
			return err
		}
		netem := netlink.NewNetem(
			rootQdiscAttrs(link),
			netlink.NetemQdiscAttrs{
				Latency: uint32(sh.Delay.Microseconds()),
				Jitter:  uint32(sh.Jitter.Microseconds()),
				Loss:    float32(sh.LossPercent),
				// netem rate is carried in bytes per second.
				Rate64: sh.BandwidthBps / 8,
			},
		)
		return h.QdiscReplace(netem)
	})
}

func (osBackend) ClearShaping(ctx context.Context, nsName, ifName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return withHandle(nsName, func(h *netlink.Handle) error {
		link, err := h.LinkByName(ifName)
		if err != nil {
			return err
		}
		qdisc := &netlink.GenericQdisc{
			QdiscAttrs: rootQdiscAttrs(link),
			QdiscType:  "netem",
		}
		if err := h.QdiscDel(qdisc); err != nil && !isMissingQdisc(err) {
			return err
		}
		return nil
	})
}

func (osBackend) CreateBridge(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bridge := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: name}}
	if err := netlink.LinkAdd(bridge); err != nil {
		return fmt.Errorf("create bridge %q: %w", name, err)
	}
	return nil
}

func (osBackend) AttachToBridge(ctx context.Context, ifName, bridge string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	br, err := netlink.LinkByName(bridge)
	if err != nil {
		return fmt.Errorf("find bridge %q: %w", bridge, err)
	}
	link, err := netlink.LinkByName(ifName)
	if err != nil {
		return fmt.Errorf("find %q: %w", ifName, err)
	}
	if err := netlink.LinkSetMaster(link, br); err != nil {
		return fmt.Errorf("attach %q to %q: %w", ifName, bridge, err)
	}
	return nil
}

func (osBackend) DeleteInterface(ctx context.Context, nsName, ifName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return withHandle(nsName, func(h *netlink.Handle) error {
		link, err := h.LinkByName(ifName)
		if err != nil {
			var notFound netlink.LinkNotFoundError
			if errors.As(err, &notFound) {
				return nil
			}
			return err
		}
		return h.LinkDel(link)
	})
}

func rootQdiscAttrs(link netlink.Link) netlink.QdiscAttrs {
	return netlink.QdiscAttrs{
		LinkIndex: link.Attrs().Index,
		Handle:    netlink.MakeHandle(1, 0),
		Parent:    netlink.HANDLE_ROOT,
	}
}

func isMissingQdisc(err error) bool {
	// Deleting a qdisc that was never installed reports ENOENT or EINVAL
	// depending on kernel version.
	return errors.Is(err, unix.ENOENT) || errors.Is(err, unix.EINVAL)
}
