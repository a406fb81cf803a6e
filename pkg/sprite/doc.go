// Package sprite locates, downloads and decodes pokemon sprites into
// immutable pixel grids.
package sprite
