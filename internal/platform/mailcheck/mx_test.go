package mailcheck

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeResolver is a fake implementation of the mxResolver interface.
type fakeResolver struct {
	// LookupMXFunc is called when the LookupMX method is invoked.
	LookupMXFunc func(ctx context.Context, name string) ([]*net.MX, error)
	// calls records the domains that were looked up.
	calls []string
}

// LookupMX is the fake implementation of the LookupMX method.
func (f *fakeResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	f.calls = append(f.calls, name)
	if f.LookupMXFunc != nil {
		return f.LookupMXFunc(ctx, name)
	}
	return nil, errors.New("no fake configured")
}

func TestMXValidator_HasMXRecord(t *testing.T) {
	t.Run("domain with MX records", func(t *testing.T) {
		resolver := &fakeResolver{
			LookupMXFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
				return []*net.MX{{Host: "mx1.example.com.", Pref: 10}}, nil
			},
		}
		v := &MXValidator{resolver: resolver, timeout: time.Second}

		ok, err := v.HasMXRecord(context.Background(), "example.com")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"example.com"}, resolver.calls)
	})

	t.Run("domain with empty MX answer", func(t *testing.T) {
		resolver := &fakeResolver{
			LookupMXFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
				return nil, nil
			},
		}
		v := &MXValidator{resolver: resolver, timeout: time.Second}

		ok, err := v.HasMXRecord(context.Background(), "example.com")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nonexistent domain is a definitive negative", func(t *testing.T) {
		resolver := &fakeResolver{
			LookupMXFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
				return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
			},
		}
		v := &MXValidator{resolver: resolver, timeout: time.Second}

		ok, err := v.HasMXRecord(context.Background(), "nonexistent-domain-xyz.invalid")

		assert.NoError(t, err, "NXDOMAIN is an answer, not a failure")
		assert.False(t, ok)
	})

	t.Run("resolver timeout maps to context.DeadlineExceeded", func(t *testing.T) {
		resolver := &fakeResolver{
			LookupMXFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
				return nil, &net.DNSError{Err: "i/o timeout", Name: name, IsTimeout: true}
			},
		}
		v := &MXValidator{resolver: resolver, timeout: time.Second}

		ok, err := v.HasMXRecord(context.Background(), "example.com")

		assert.False(t, ok)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("expired context maps to its context error", func(t *testing.T) {
		resolver := &fakeResolver{
			LookupMXFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
				<-ctx.Done()
				return nil, &net.DNSError{Err: "lookup canceled", Name: name}
			},
		}
		v := &MXValidator{resolver: resolver, timeout: time.Millisecond}

		ok, err := v.HasMXRecord(context.Background(), "example.com")

		assert.False(t, ok)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("other resolution failures are returned as-is", func(t *testing.T) {
		resolverErr := &net.DNSError{Err: "server misbehaving", Name: "example.com", IsTemporary: true}
		resolver := &fakeResolver{
			LookupMXFunc: func(ctx context.Context, name string) ([]*net.MX, error) {
				return nil, resolverErr
			},
		}
		v := &MXValidator{resolver: resolver, timeout: time.Second}

		ok, err := v.HasMXRecord(context.Background(), "example.com")

		assert.False(t, ok)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("empty domain skips the lookup", func(t *testing.T) {
		resolver := &fakeResolver{}
		v := &MXValidator{resolver: resolver, timeout: time.Second}

		ok, err := v.HasMXRecord(context.Background(), "")

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, resolver.calls, "no DNS query for an empty domain")
	})
}

func TestNewMXValidator(t *testing.T) {
	v := NewMXValidator(5 * time.Second)

	assert.NotNil(t, v)
	assert.Equal(t, net.DefaultResolver, v.resolver)
	assert.Equal(t, 5*time.Second, v.timeout)
}
