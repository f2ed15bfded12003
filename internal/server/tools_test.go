package server

import (
	"sort"
	"testing"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
)

func toolByName(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("%s tool not found", name)
	return Tool{}
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"geometry_parse",
		"geometry_format",
		"image_info",
		"image_resize",
		"image_crop",
		"image_extent",
		"image_geometry_overlay",
		"image_ocr_region",
		"backend_info",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}
		})
	}
}

func TestToolDefinitions_RequiredGeometry(t *testing.T) {
	toolsRequiringGeometry := []string{
		"geometry_parse",
		"image_resize",
		"image_crop",
		"image_extent",
		"image_geometry_overlay",
		"image_ocr_region",
	}

	for _, name := range toolsRequiringGeometry {
		t.Run(name, func(t *testing.T) {
			tool := toolByName(t, name)

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property", r)
				}
			}

			if !contains(required, "geometry") {
				t.Error("Tool should require 'geometry' parameter")
			}
			if name != "geometry_parse" && !contains(required, "path") {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_EngineEnum(t *testing.T) {
	for _, name := range []string{"image_resize", "image_crop"} {
		t.Run(name, func(t *testing.T) {
			props := toolByName(t, name).InputSchema["properties"].(map[string]interface{})
			engine, ok := props["engine"].(map[string]interface{})
			if !ok {
				t.Fatal("engine property should exist and be a map")
			}

			enum := append([]string(nil), engine["enum"].([]string)...)
			sort.Strings(enum)
			known := backend.KnownEngines()
			sort.Strings(known)

			if len(enum) != len(known) {
				t.Fatalf("engine enum: got %v, want %v", enum, known)
			}
			for i := range enum {
				if enum[i] != known[i] {
					t.Errorf("engine enum: got %v, want %v", enum, known)
					break
				}
			}
		})
	}
}

func TestToolDefinitions_FilterEnum(t *testing.T) {
	props := toolByName(t, "image_resize").InputSchema["properties"].(map[string]interface{})
	filter, ok := props["filter"].(map[string]interface{})
	if !ok {
		t.Fatal("filter property should exist and be a map")
	}
	enum := filter["enum"].([]string)

	for _, f := range backend.Filters() {
		if !contains(enum, string(f)) {
			t.Errorf("filter %s missing from enum", f)
		}
	}
	for _, name := range enum {
		if _, err := backend.ParseFilter(name); err != nil {
			t.Errorf("enum value %s is not a valid filter: %v", name, err)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
