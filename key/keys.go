// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Array Defaults - these keys seed containers created by the inline mode.
const (
	ArrayCapacity     = "array.capacity"
	ArrayGrowthFactor = "array.growth_factor"
)

// Demonstration - these keys parametrize the default root command scenario.
const (
	DemoInitial = "demo.initial"
	DemoAppend  = "demo.append"
	DemoPrepend = "demo.prepend"
	DemoRemove  = "demo.remove"
)

// Rendering - these keys control how container listings are printed.
const (
	RenderSeparator = "render.separator"
	RenderWrap      = "render.wrap"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
