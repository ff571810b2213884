package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			name: "with wrapped error",
			err:  New("provider", "ReadNamedDataset", ErrInternal, fmt.Errorf("disk gone")),
			want: "provider.ReadNamedDataset: internal error: disk gone",
		},
		{
			name: "without wrapped error",
			err:  New("mcp", "RegisterTool", ErrAlreadyRegistered, nil),
			want: "mcp.RegisterTool: already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	t.Parallel()

	err := New("mcp", "RegisterTool", ErrAlreadyRegistered, fmt.Errorf("tool echo"))

	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Error("errors.Is() should match the Kind sentinel")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is() should not match an unrelated sentinel")
	}
}

func TestDomainError_IsWrappedChain(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("open failed: %w", ErrNotFound)
	err := New("provider", "ReadNamedDocument", ErrInternal, inner)

	if !errors.Is(err, ErrInternal) {
		t.Error("errors.Is() should match the Kind sentinel")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is() should traverse the wrapped chain")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("root cause")
	err := New("mcp", "Handle", ErrInternal, inner)

	if got := errors.Unwrap(err); got != inner {
		t.Errorf("Unwrap() = %v, want %v", got, inner)
	}
}

func TestDomainError_As(t *testing.T) {
	t.Parallel()

	var err error = New("transport", "ServeHTTP", ErrBadRequest, fmt.Errorf("empty body"))

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("errors.As() should find the *DomainError")
	}
	if domainErr.Domain != "transport" {
		t.Errorf("Domain = %q, want %q", domainErr.Domain, "transport")
	}
	if domainErr.Op != "ServeHTTP" {
		t.Errorf("Op = %q, want %q", domainErr.Op, "ServeHTTP")
	}
}

func TestDomainError_WithContext(t *testing.T) {
	t.Parallel()

	err := New("mcp", "RegisterTool", ErrAlreadyRegistered, nil).
		WithContext("tool_name", "echo").
		WithContext("attempt", 2)

	if got := err.Context["tool_name"]; got != "echo" {
		t.Errorf("Context[tool_name] = %v, want echo", got)
	}
	if got := err.Context["attempt"]; got != 2 {
		t.Errorf("Context[attempt] = %v, want 2", got)
	}
}

func TestDomainError_WithContextNilMap(t *testing.T) {
	t.Parallel()

	err := &DomainError{Domain: "mcp", Op: "Handle", Kind: ErrInternal}
	err = err.WithContext("key", "value")

	if got := err.Context["key"]; got != "value" {
		t.Errorf("Context[key] = %v, want value", got)
	}
}

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrBadRequest, ErrAlreadyRegistered, ErrInternal}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
	for _, s := range sentinels {
		if strings.TrimSpace(s.Error()) == "" {
			t.Error("sentinel message should not be empty")
		}
	}
}
