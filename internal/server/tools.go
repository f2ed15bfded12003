package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const geometrySyntax = "Geometry string WxH{+-}X{+-}Y with optional flags: % (percent), ! (exact size), < (only enlarge), > (only shrink), @ (pixel area). Parsing is lenient: unparsable parts are ignored."

var (
	pathProperty = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	geometryProperty = map[string]interface{}{
		"type":        "string",
		"description": geometrySyntax,
	}
	rectangleProperty = map[string]interface{}{
		"type":        "object",
		"description": "Rectangle with integer x, y, width and height",
		"properties": map[string]interface{}{
			"x":      map[string]interface{}{"type": "integer"},
			"y":      map[string]interface{}{"type": "integer"},
			"width":  map[string]interface{}{"type": "integer"},
			"height": map[string]interface{}{"type": "integer"},
		},
	}
	engineProperty = map[string]interface{}{
		"type":        "string",
		"description": "Imaging engine. Defaults to the configured engine.",
		"enum":        []string{"imaging", "bild", "vips"},
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Geometry strings
		{
			Name:        "geometry_parse",
			Description: "Parse an ImageMagick-style geometry string. Returns the flag bitmask, the flag names, the resulting rectangle and the canonical form of the geometry. Fields not present in the string keep their default values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"geometry": geometryProperty,
					"defaults": rectangleProperty,
				},
				"required": []string{"geometry"},
			},
		},
		{
			Name:        "geometry_format",
			Description: "Write a rectangle and a set of flags as a canonical geometry string. Flags can be given as a bitmask, as names (e.g. WidthValue, XNegative), or both.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"rectangle": rectangleProperty,
					"flags": map[string]interface{}{
						"type":        "integer",
						"description": "Flag bitmask as returned by geometry_parse",
					},
					"flag_names": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Flag names as returned by geometry_parse",
					},
				},
				"required": []string{"rectangle"},
			},
		},

		// Geometry applied to images
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, its size as a WxH geometry, and its format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Resize an image by a geometry (e.g. 640x480, 50%, 800x600!, 1024x768>, 10000@) and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"geometry": geometryProperty,
					"engine":   engineProperty,
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Resampling filter. Defaults to the configured filter.",
						"enum":        []string{"nearest", "box", "linear", "catmullrom", "mitchell", "lanczos"},
					},
				},
				"required": []string{"path", "geometry"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Crop the region a geometry selects (e.g. 100x50+10+20, 50%) and return it as base64-encoded PNG. The region is clipped to the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"geometry": geometryProperty,
					"engine":   engineProperty,
				},
				"required": []string{"path", "geometry"},
			},
		},
		{
			Name:        "image_extent",
			Description: "Place the image on a canvas of the geometry's size, shifted by its offsets, and fill the rest with a background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"geometry": geometryProperty,
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color (#RRGGBB, #RRGGBBAA or none). Defaults to the configured background.",
					},
				},
				"required": []string{"path", "geometry"},
			},
		},
		{
			Name:        "image_geometry_overlay",
			Description: "Outline the region a geometry selects on top of the image and label it with the canonical geometry. Useful to check a crop before applying it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"geometry": geometryProperty,
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color. Defaults to the configured overlay color.",
					},
				},
				"required": []string{"path", "geometry"},
			},
		},
		{
			Name:        "image_ocr_region",
			Description: "Extract text from the region a geometry selects. Word bounds are reported in image coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"geometry": geometryProperty,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code(s), e.g. eng or eng+deu. Defaults to the configured language.",
					},
				},
				"required": []string{"path", "geometry"},
			},
		},

		// Diagnostics
		{
			Name:        "backend_info",
			Description: "Report the started imaging engines, the default engine, the resampling filters and the Tesseract version.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
