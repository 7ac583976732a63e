package metadata

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	ResourceTypeNone ResourceType = iota
	/** @brief Scene graph resource type (nodes with transforms and geometry). */
	ResourceTypeScene
	/** @brief Application configuration. */
	ResourceTypeConfig
	/** @brief Environment map used by the renderer. */
	ResourceTypeEnvironment
	/** @brief Custom resource type. Used by loaders outside the core engine. */
	ResourceTypeCustom
)

func (r ResourceType) String() string {
	switch r {
	case ResourceTypeScene:
		return "scene"
	case ResourceTypeConfig:
		return "config"
	case ResourceTypeEnvironment:
		return "environment"
	case ResourceTypeCustom:
		return "custom"
	default:
		return "none"
	}
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	Type     ResourceType
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}
