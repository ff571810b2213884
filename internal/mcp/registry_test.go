package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	internalerrors "monday-boards-mcp/internal/errors"
)

func namedTool(name string) Tool {
	return &stubTool{
		name: name,
		execute: func(context.Context, map[string]any) (string, error) {
			return name, nil
		},
	}
}

func namedResource(uri string) ResourceProvider {
	return &stubResource{
		uri: uri,
		read: func(context.Context) (*Resource, error) {
			return &Resource{URI: uri, MimeType: "text/plain", Text: "content"}, nil
		},
	}
}

func TestToolRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		registry := NewToolRegistry()
		if err := registry.RegisterTool(namedTool("echo")); err != nil {
			t.Fatalf("RegisterTool() error = %v", err)
		}

		tool, ok := registry.GetTool("echo")
		if !ok {
			t.Fatal("GetTool() should find registered tool")
		}
		if got := tool.Definition().Name; got != "echo" {
			t.Errorf("Definition().Name = %q, want %q", got, "echo")
		}
	})

	t.Run("nil tool rejected", func(t *testing.T) {
		t.Parallel()

		registry := NewToolRegistry()
		if err := registry.RegisterTool(nil); err == nil {
			t.Error("RegisterTool(nil) should return an error")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()

		registry := NewToolRegistry()
		if err := registry.RegisterTool(namedTool("")); err == nil {
			t.Error("RegisterTool() with empty name should return an error")
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		t.Parallel()

		registry := NewToolRegistry()
		if err := registry.RegisterTool(namedTool("echo")); err != nil {
			t.Fatalf("first RegisterTool() error = %v", err)
		}

		err := registry.RegisterTool(namedTool("echo"))
		if err == nil {
			t.Fatal("duplicate RegisterTool() should return an error")
		}
		if !errors.Is(err, ErrToolAlreadyRegistered) {
			t.Errorf("error should wrap ErrToolAlreadyRegistered, got %v", err)
		}
		if !errors.Is(err, internalerrors.ErrAlreadyRegistered) {
			t.Errorf("error should match ErrAlreadyRegistered, got %v", err)
		}

		// First registration wins.
		if got := len(registry.ListTools()); got != 1 {
			t.Errorf("ListTools() length = %d, want 1", got)
		}
	})
}

func TestToolRegistry_Get(t *testing.T) {
	t.Parallel()

	registry := NewToolRegistry()
	if _, ok := registry.GetTool("missing"); ok {
		t.Error("GetTool() on empty registry should report not found")
	}
	if _, ok := registry.GetTool(""); ok {
		t.Error("GetTool(\"\") should report not found")
	}
}

func TestToolRegistry_ListOrder(t *testing.T) {
	t.Parallel()

	registry := NewToolRegistry()
	names := []string{"echo", "get_time", "get_SMMSMasterList", "get_boards_info"}
	for _, name := range names {
		if err := registry.RegisterTool(namedTool(name)); err != nil {
			t.Fatalf("RegisterTool(%q) error = %v", name, err)
		}
	}

	for attempt := 0; attempt < 3; attempt++ {
		definitions := registry.ListTools()
		if len(definitions) != len(names) {
			t.Fatalf("ListTools() length = %d, want %d", len(definitions), len(names))
		}
		for i, name := range names {
			if definitions[i].Name != name {
				t.Errorf("ListTools()[%d].Name = %q, want %q", i, definitions[i].Name, name)
			}
		}
	}
}

func TestToolRegistry_ListEmpty(t *testing.T) {
	t.Parallel()

	definitions := NewToolRegistry().ListTools()
	if definitions == nil {
		t.Error("ListTools() should return an empty slice, not nil")
	}
	if len(definitions) != 0 {
		t.Errorf("ListTools() length = %d, want 0", len(definitions))
	}
}

func TestResourceRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		registry := NewResourceRegistry()
		if err := registry.RegisterResource(namedResource("config://server")); err != nil {
			t.Fatalf("RegisterResource() error = %v", err)
		}

		provider, ok := registry.GetResource("config://server")
		if !ok {
			t.Fatal("GetResource() should find registered resource")
		}

		resource, err := provider.Read(context.Background())
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if resource.URI != "config://server" {
			t.Errorf("Read().URI = %q, want %q", resource.URI, "config://server")
		}
	})

	t.Run("nil provider rejected", func(t *testing.T) {
		t.Parallel()

		registry := NewResourceRegistry()
		if err := registry.RegisterResource(nil); err == nil {
			t.Error("RegisterResource(nil) should return an error")
		}
	})

	t.Run("duplicate URI rejected", func(t *testing.T) {
		t.Parallel()

		registry := NewResourceRegistry()
		if err := registry.RegisterResource(namedResource("config://server")); err != nil {
			t.Fatalf("first RegisterResource() error = %v", err)
		}

		err := registry.RegisterResource(namedResource("config://server"))
		if err == nil {
			t.Fatal("duplicate RegisterResource() should return an error")
		}
		if !errors.Is(err, ErrResourceAlreadyRegistered) {
			t.Errorf("error should wrap ErrResourceAlreadyRegistered, got %v", err)
		}
	})
}

func TestResourceRegistry_ListOrder(t *testing.T) {
	t.Parallel()

	registry := NewResourceRegistry()
	uris := []string{"config://server", "docs://readme", "docs://changelog"}
	for _, uri := range uris {
		if err := registry.RegisterResource(namedResource(uri)); err != nil {
			t.Fatalf("RegisterResource(%q) error = %v", uri, err)
		}
	}

	definitions := registry.ListResources()
	if len(definitions) != len(uris) {
		t.Fatalf("ListResources() length = %d, want %d", len(definitions), len(uris))
	}
	for i, uri := range uris {
		if definitions[i].URI != uri {
			t.Errorf("ListResources()[%d].URI = %q, want %q", i, definitions[i].URI, uri)
		}
	}
}

func TestRegistry_ErrorContext(t *testing.T) {
	t.Parallel()

	registry := NewToolRegistry()
	if err := registry.RegisterTool(namedTool("echo")); err != nil {
		t.Fatalf("RegisterTool() error = %v", err)
	}

	err := registry.RegisterTool(namedTool("echo"))
	var domainErr *internalerrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error should be a *DomainError, got %T", err)
	}
	if got := fmt.Sprint(domainErr.Context["tool_name"]); got != "echo" {
		t.Errorf("Context[tool_name] = %q, want %q", got, "echo")
	}
}
