package fspath

// Path is a file system path held in its string representation.
// It is a ready-made path-like type: passing a Path to the conversion
// functions succeeds under the default string constraint.
type Path string

var _ PathLike = Path("")

// FSPath returns the path as a plain string.
func (p Path) FSPath() string {
	return string(p)
}
