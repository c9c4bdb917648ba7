// Package mailcheck provides a DNS-based existence check for email domains.
package mailcheck

import (
	"context"
	"errors"
	"net"
	"time"
)

// mxResolver is the subset of *net.Resolver used by the validator.
// It exists so tests can substitute a fake resolver.
type mxResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// MXValidator reports whether a domain has at least one mail-exchange record.
// Each lookup is an outbound DNS query bounded by the configured timeout.
type MXValidator struct {
	resolver mxResolver
	timeout  time.Duration
}

// NewMXValidator returns a validator backed by the default system resolver.
// timeout bounds each lookup; zero or negative disables the bound.
func NewMXValidator(timeout time.Duration) *MXValidator {
	return &MXValidator{resolver: net.DefaultResolver, timeout: timeout}
}

// HasMXRecord reports whether domain has at least one MX record.
// NXDOMAIN and "no such host" answers return (false, nil); a lookup that
// exceeds the timeout returns an error satisfying errors.Is(err,
// context.DeadlineExceeded) so callers can surface it distinctly. Any other
// resolution failure is returned as-is for the caller to fail closed on.
func (v *MXValidator) HasMXRecord(ctx context.Context, domain string) (bool, error) {
	if domain == "" {
		return false, nil
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	records, err := v.resolver.LookupMX(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			if dnsErr.IsNotFound {
				// The domain does not exist: a definitive negative answer.
				return false, nil
			}
			// net.DNSError does not wrap the context error, so translate
			// timeouts explicitly for errors.Is at the call site.
			if dnsErr.IsTimeout {
				return false, context.DeadlineExceeded
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, err
	}

	return len(records) > 0, nil
}
