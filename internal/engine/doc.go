// Package engine is the reference document toolchain behind the
// fontcompare collaborator contracts: a Markdown compiler, a rasterizing
// renderer, and an image-per-page PDF encoder.
//
// The markup is Markdown with an optional YAML front matter block for page
// geometry (author, pageWidth, margin, textSize, all point-valued), plus
// comment directives used by the synthesized comparison document:
//
//	<!-- page -->          start a new page
//	<!-- outline -->       insert the outline of collected entries
//	<!-- entry: X -->      hidden outline entry for the current page
//	<!-- header: X -->     header row: X left, running page number right
//
// Image references carry their point dimensions in the Markdown title,
// e.g. ![v](render-0.png "240.00x120.00"); images without a title use
// their intrinsic pixel size at one pixel per point.
//
// The engine implements just enough layout to compare typefaces: greedy
// line wrapping, two heading levels, paragraphs, and images. It is not a
// typesetting system; any engine implementing the contracts can replace
// it.
package engine
