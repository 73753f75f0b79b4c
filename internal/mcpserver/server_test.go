package mcpserver

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/i-asim/my-portfolio/internal/index"
	"github.com/i-asim/my-portfolio/internal/postservice"
	"github.com/i-asim/my-portfolio/internal/storage"
)

func testServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()

	contentDir := t.TempDir()
	store, err := storage.NewFS(contentDir)
	if err != nil {
		t.Fatal(err)
	}

	dbFile, err := os.CreateTemp("", "portfolio-mcp-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	srv := New(postservice.NewService(store, db), store)
	return srv, store
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we
	// dispatch to the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_posts":
		result, err = srv.searchPosts(ctx, req)
	case "read_post":
		result, err = srv.readPost(ctx, req)
	case "create_post":
		result, err = srv.createPost(ctx, req)
	case "update_post":
		result, err = srv.updatePost(ctx, req)
	case "delete_post":
		result, err = srv.deletePost(ctx, req)
	case "list_posts":
		result, err = srv.listPosts(ctx, req)
	case "get_post_contract":
		result, err = srv.getPostContract(ctx, req)
	case "upload_asset":
		result, err = srv.uploadAsset(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCreateAndReadPost(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_post", map[string]interface{}{
		"name":    "test.mdx",
		"content": "---\ntitle: Test\n---\n\nHello",
	})
	text := resultText(r)
	if text != "created: test.mdx" {
		t.Errorf("create result = %q", text)
	}

	r = callTool(t, srv, "read_post", map[string]interface{}{
		"name": "test.mdx",
	})
	text = resultText(r)
	if text != "---\ntitle: Test\n---\n\nHello" {
		t.Errorf("read result = %q", text)
	}
}

func TestCreatePostDuplicate(t *testing.T) {
	srv, _ := testServer(t)

	_ = callTool(t, srv, "create_post", map[string]interface{}{
		"name": "dup.mdx", "content": "x",
	})
	r := callTool(t, srv, "create_post", map[string]interface{}{
		"name": "dup.mdx", "content": "y",
	})
	if !r.IsError {
		t.Error("expected error for duplicate post")
	}
	if text := resultText(r); !strings.Contains(text, "already exists") {
		t.Errorf("error text = %q", text)
	}
}

func TestUpdatePost(t *testing.T) {
	srv, _ := testServer(t)

	_ = callTool(t, srv, "create_post", map[string]interface{}{
		"name": "u.mdx", "content": "v1",
	})
	r := callTool(t, srv, "update_post", map[string]interface{}{
		"name": "u.mdx", "content": "v2",
	})
	if text := resultText(r); text != "updated: u.mdx" {
		t.Errorf("update result = %q", text)
	}

	r = callTool(t, srv, "read_post", map[string]interface{}{"name": "u.mdx"})
	if text := resultText(r); text != "v2" {
		t.Errorf("read after update = %q", text)
	}
}

func TestDeletePost(t *testing.T) {
	srv, _ := testServer(t)

	_ = callTool(t, srv, "create_post", map[string]interface{}{
		"name": "d.mdx", "content": "x",
	})
	r := callTool(t, srv, "delete_post", map[string]interface{}{"name": "d.mdx"})
	if text := resultText(r); text != "deleted: d.mdx" {
		t.Errorf("delete result = %q", text)
	}

	r = callTool(t, srv, "read_post", map[string]interface{}{"name": "d.mdx"})
	if !r.IsError {
		t.Error("expected error after delete")
	}
}

func TestListPostsByTag(t *testing.T) {
	srv, _ := testServer(t)

	_ = callTool(t, srv, "create_post", map[string]interface{}{
		"name": "a.mdx", "content": "---\ntitle: A\ntags:\n  - go\n---\nx",
	})
	_ = callTool(t, srv, "create_post", map[string]interface{}{
		"name": "b.mdx", "content": "---\ntitle: B\ntags:\n  - travel\n---\nx",
	})

	r := callTool(t, srv, "list_posts", map[string]interface{}{"tag": "go"})
	text := resultText(r)
	if !strings.Contains(text, "a.mdx") || strings.Contains(text, "b.mdx") {
		t.Errorf("list result = %q", text)
	}
}

func TestReadPostMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_post", map[string]interface{}{"name": "nope.mdx"})
	if !r.IsError {
		t.Error("expected error for missing post")
	}
}

func TestSearchPosts(t *testing.T) {
	srv, _ := testServer(t)
	_ = callTool(t, srv, "create_post", map[string]interface{}{
		"name": "s.mdx", "content": "---\ntitle: S\n---\nzeppelin maintenance log",
	})

	r := callTool(t, srv, "search_posts", map[string]interface{}{"query": "zeppelin"})
	if text := resultText(r); !strings.Contains(text, "s.mdx") {
		t.Errorf("search result = %q", text)
	}
}

func TestPostContract(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_post_contract", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "front matter") || !strings.Contains(text, "Gallery") {
		t.Errorf("contract missing expected sections")
	}
}
