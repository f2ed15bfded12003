// Package imaging applies parsed geometries to images.
//
// The geometry package only reports what a specification says; this package
// decides what it means for a given image, following the usual toolkit
// conventions:
//
//   - Resize: "WxH" fits inside the box keeping aspect ratio, "WxH!" forces
//     the exact size, "W" or "xH" fixes one side, "N%" scales, "N@" limits
//     the pixel area. '>' only shrinks, '<' only enlarges, and both together
//     always resize.
//   - Crop: "WxH+X+Y" selects a region relative to the top-left corner. Sizes
//     may be percentages of the image, missing sizes mean the full image, and
//     the region is clipped to the image bounds.
//   - Extent: "WxH+X+Y" sizes a new canvas and places the image at (-X,-Y),
//     filling the rest with a background color.
//
// The sizing math (ResizeDimensions, CropRegion, ExtentCanvas) is pure and
// engine independent. Resize and Crop hand the pixel work to a
// backend.Engine; Extent and GeometryOverlay draw directly.
//
// # Coordinate System
//
// (0,0) is the top-left pixel, X grows rightward and Y downward. Regions are
// half-open: Min is inclusive and Max exclusive.
//
// # Results
//
// Every operation returns a Result carrying the output size, the canonical
// form of the geometry that was applied and the output as a base64 PNG.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The operations are stateless.
package imaging
