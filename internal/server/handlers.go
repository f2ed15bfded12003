package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
	"github.com/ironsheep/image-geometry-mcp/internal/geometry"
	"github.com/ironsheep/image-geometry-mcp/internal/imaging"
	"github.com/ironsheep/image-geometry-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "geometry_parse", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Invalid arguments, such as a missing geometry, return -32602. Every other
// tool failure returns -32000, including a panic inside the tool.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.safeExecuteTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		if errors.Is(err, geometry.ErrInvalidArgument) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// safeExecuteTool runs executeTool and turns a panic into an error so that
// one bad call does not end the process.
func (s *Server) safeExecuteTool(name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tool %s panicked: %v\n%s", name, r, debug.Stack())
			result, err = nil, fmt.Errorf("tool %s failed: %v", name, r)
		}
	}()
	return s.executeTool(name, args)
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Geometry strings
	case "geometry_parse":
		return s.handleGeometryParse(args)
	case "geometry_format":
		return s.handleGeometryFormat(args)

	// Geometry applied to images
	case "image_info":
		return s.handleImageInfo(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_extent":
		return s.handleImageExtent(args)
	case "image_geometry_overlay":
		return s.handleImageGeometryOverlay(args)
	case "image_ocr_region":
		return s.handleImageOCRRegion(args)

	// Diagnostics
	case "backend_info":
		return s.handleBackendInfo()

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// requireGeometry dereferences a geometry argument. A missing or null
// geometry is an invalid argument; an empty string is a valid geometry.
func requireGeometry(spec *string) (string, error) {
	if spec == nil {
		return "", fmt.Errorf("%w: geometry is required", geometry.ErrInvalidArgument)
	}
	return *spec, nil
}

// === Geometry String Handlers ===

type geometryParseArgs struct {
	Geometry *string             `json:"geometry"`
	Defaults *geometry.Rectangle `json:"defaults"`
}

type geometryResult struct {
	Flags     uint32             `json:"flags"`
	FlagNames []string           `json:"flag_names"`
	Rectangle geometry.Rectangle `json:"rectangle"`
	Canonical string             `json:"canonical"`
}

func newGeometryResult(flags geometry.Flags, rect geometry.Rectangle) *geometryResult {
	names := flags.Names()
	if names == nil {
		names = []string{}
	}
	return &geometryResult{
		Flags:     uint32(flags),
		FlagNames: names,
		Rectangle: rect,
		Canonical: geometry.Format(rect, flags),
	}
}

func (s *Server) handleGeometryParse(args json.RawMessage) (interface{}, error) {
	var a geometryParseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var rect geometry.Rectangle
	if a.Defaults != nil {
		rect = *a.Defaults
	}
	flags, err := geometry.ParseRef(a.Geometry, &rect)
	if err != nil {
		return nil, err
	}
	return newGeometryResult(flags, rect), nil
}

type geometryFormatArgs struct {
	Rectangle geometry.Rectangle `json:"rectangle"`
	Flags     uint32             `json:"flags"`
	FlagNames []string           `json:"flag_names"`
}

func (s *Server) handleGeometryFormat(args json.RawMessage) (interface{}, error) {
	var a geometryFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	named, unknown := geometry.FlagsFromNames(a.FlagNames)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unknown flag names %v", geometry.ErrInvalidArgument, unknown)
	}
	return newGeometryResult(geometry.Flags(a.Flags)|named, a.Rectangle), nil
}

// === Image Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageResizeArgs struct {
	Path     string  `json:"path"`
	Geometry *string `json:"geometry"`
	Engine   string  `json:"engine"`
	Filter   string  `json:"filter"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spec, err := requireGeometry(a.Geometry)
	if err != nil {
		return nil, err
	}
	if a.Filter == "" {
		a.Filter = s.cfg.Filter
	}
	filter, err := backend.ParseFilter(a.Filter)
	if err != nil {
		return nil, err
	}
	eng, err := s.backend.Engine(a.Engine)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(eng, img, spec, filter, s.cfg.MaxPixels)
}

type imageCropArgs struct {
	Path     string  `json:"path"`
	Geometry *string `json:"geometry"`
	Engine   string  `json:"engine"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spec, err := requireGeometry(a.Geometry)
	if err != nil {
		return nil, err
	}
	eng, err := s.backend.Engine(a.Engine)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(eng, img, spec)
}

type imageExtentArgs struct {
	Path       string  `json:"path"`
	Geometry   *string `json:"geometry"`
	Background string  `json:"background"`
}

func (s *Server) handleImageExtent(args json.RawMessage) (interface{}, error) {
	var a imageExtentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spec, err := requireGeometry(a.Geometry)
	if err != nil {
		return nil, err
	}
	if a.Background == "" {
		a.Background = s.cfg.Background
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Extent(img, spec, a.Background, s.cfg.MaxPixels)
}

type imageGeometryOverlayArgs struct {
	Path     string  `json:"path"`
	Geometry *string `json:"geometry"`
	Color    string  `json:"color"`
}

func (s *Server) handleImageGeometryOverlay(args json.RawMessage) (interface{}, error) {
	var a imageGeometryOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spec, err := requireGeometry(a.Geometry)
	if err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = s.cfg.OverlayColor
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GeometryOverlay(img, spec, a.Color)
}

// === OCR Handler ===

type imageOCRRegionArgs struct {
	Path     string  `json:"path"`
	Geometry *string `json:"geometry"`
	Language string  `json:"language"`
}

type ocrRegionResult struct {
	*ocr.OCRResult
	Geometry string `json:"geometry"`
}

func (s *Server) handleImageOCRRegion(args json.RawMessage) (interface{}, error) {
	var a imageOCRRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spec, err := requireGeometry(a.Geometry)
	if err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.cfg.OCR.Language
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var rect geometry.Rectangle
	flags, err := geometry.Parse(spec, &rect)
	if err != nil {
		return nil, err
	}
	region, err := imaging.CropRegion(img.Bounds(), flags, rect)
	if err != nil {
		return nil, err
	}

	result, err := ocr.ExtractRegion(img, region, ocr.Options{
		Language:       a.Language,
		TessdataPrefix: s.cfg.OCR.TessdataPrefix,
	})
	if err != nil {
		return nil, err
	}
	return &ocrRegionResult{OCRResult: result, Geometry: geometry.Format(rect, flags)}, nil
}

// === Diagnostics ===

type backendInfoResult struct {
	backend.Info
	KnownEngines []string         `json:"known_engines"`
	Filters      []backend.Filter `json:"filters"`
	OCRVersion   string           `json:"ocr_version"`
}

func (s *Server) handleBackendInfo() (interface{}, error) {
	version := ocr.Version()
	if version == "" {
		version = "unavailable"
	}
	return &backendInfoResult{
		Info:         s.backend.Info(),
		KnownEngines: backend.KnownEngines(),
		Filters:      backend.Filters(),
		OCRVersion:   version,
	}, nil
}
