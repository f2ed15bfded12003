// Package server implements the MCP (Model Context Protocol) server for the
// geometry tools.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Geometry strings:
//   - geometry_parse: Parse a geometry into flags and a rectangle
//   - geometry_format: Write a rectangle and flags back as a geometry
//
// Geometry applied to images:
//   - image_info: Image metadata, including its size as a geometry
//   - image_resize: Resize by a geometry such as "50%" or "800x600>"
//   - image_crop: Crop the region a geometry selects
//   - image_extent: Place the image on a geometry-sized canvas
//   - image_geometry_overlay: Outline the region a geometry selects
//   - image_ocr_region: Read text inside the region a geometry selects
//
// Diagnostics:
//   - backend_info: Engines, filters and Tesseract version
//
// # Image Caching
//
// Images are decoded once per path and kept for the lifetime of the process.
//
// # Error Handling
//
// A missing or null geometry argument, or an unknown flag name, is reported
// with code -32602. Every other tool failure uses -32000 with the Go error
// string in data. A malformed geometry is never an error: the parser keeps
// whatever it can read.
//
// # Usage
//
//	be := backend.New(backend.Config{Default: cfg.Engine})
//	if err := be.Startup(); err != nil {
//	    log.Fatal(err)
//	}
//	defer be.Shutdown()
//
//	srv := server.New(cfg, be)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
