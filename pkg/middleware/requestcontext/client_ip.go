package requestcontext

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

type ClientIPConfig struct {
	// TrustedHeader names a header set by the edge proxy (X-Real-IP, CF-Connecting-IP).
	// A valid IP in it wins over everything else.
	TrustedHeader string `mapstructure:"trusted_header"`

	// TrustedProxies lists the CIDR ranges of every proxy in front of the server.
	// X-Forwarded-For is walked from the right and the first untrusted hop is the client.
	TrustedProxies []string `mapstructure:"trusted_proxies"`

	// RejectSpoofed answers 403 when X-Forwarded-For is present but no proxies are trusted.
	RejectSpoofed bool `mapstructure:"reject_spoofed"`
}

// ClientIP returns the address stored by [WithClientIP], or "".
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

func WithClientIP(config ClientIPConfig) (Option, error) {
	proxies := make([]netip.Prefix, 0, len(config.TrustedProxies))
	for _, r := range config.TrustedProxies {
		prefix, err := netip.ParsePrefix(r)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy range %q", r)
		}
		proxies = append(proxies, prefix)
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		ip := resolveClientIP(c, config, proxies)
		if ip == "" {
			logger.WarnContext(ctx, "Rejected request with untrusted X-Forwarded-For",
				slog.String("module", "requestcontext"),
				slog.String("remoteIP", c.IP()),
				slog.Any("ips", c.IPs()),
			)
			return nil, rejectError{status: fiber.StatusForbidden, message: "not allowed to access"}
		}
		return context.WithValue(ctx, clientIPKey{}, ip), nil
	}, nil
}

// resolveClientIP returns "" only when the request must be rejected.
func resolveClientIP(c *fiber.Ctx, config ClientIPConfig, proxies []netip.Prefix) string {
	if config.TrustedHeader != "" {
		if addr, err := netip.ParseAddr(c.Get(config.TrustedHeader)); err == nil {
			return addr.String()
		}
	}

	forwarded := c.IPs()
	if len(forwarded) == 0 {
		return c.IP()
	}

	if len(proxies) > 0 {
		for i := len(forwarded) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(forwarded[i])
			if err != nil {
				continue
			}
			if !trusted(proxies, addr) {
				return addr.String()
			}
		}
		return forwarded[0]
	}

	if config.RejectSpoofed {
		return ""
	}
	return forwarded[0]
}

func trusted(proxies []netip.Prefix, addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range proxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
