package property

// FunctionType is one category of dynamic styling function a property value
// may be expressed as.
type FunctionType string

const (
	// FunctionCamera varies the value with the camera (zoom level).
	FunctionCamera FunctionType = "camera"
	// FunctionSource varies the value per rendered feature.
	FunctionSource FunctionType = "source"
	// FunctionComposite varies the value with both camera and feature.
	FunctionComposite FunctionType = "composite"
)

// IsValid reports whether the function type is one of the known categories.
func (t FunctionType) IsValid() bool {
	switch t {
	case FunctionCamera, FunctionSource, FunctionComposite:
		return true
	default:
		return false
	}
}

// CatalogKind identifies which attribute catalog a property came from.
type CatalogKind int

const (
	// CatalogPaint is a paint_<layer> catalog.
	CatalogPaint CatalogKind = iota
	// CatalogLayout is a layout_<layer> catalog.
	CatalogLayout
	// CatalogLight is the ambient light catalog.
	CatalogLight
)

// String returns the catalog name as used in the override tables.
func (k CatalogKind) String() string {
	switch k {
	case CatalogPaint:
		return "paint"
	case CatalogLayout:
		return "layout"
	case CatalogLight:
		return "light"
	default:
		return "unknown"
	}
}
