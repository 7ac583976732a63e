package metadata

/**
 * @brief An opaque reference to geometry owned by the asset/render layer.
 * The animation core never reads or mutates the vertex data behind it.
 */
type Geometry struct {
	/** @brief The geometry name, usually the mesh name in the source file. */
	Name string
	/** @brief The index of the mesh in its source file, -1 when not applicable. */
	Index int
	/** @brief The file the geometry was declared in. */
	Source string
}
