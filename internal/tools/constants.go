package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolNewSession    = ToolPrefix + "new_session"
	ToolCloseSession  = ToolPrefix + "close_session"
	ToolListSessions  = ToolPrefix + "list_sessions"
	ToolPressKeys     = ToolPrefix + "press_keys"
	ToolApplyOperator = ToolPrefix + "apply_operator"
	ToolPercentage    = ToolPrefix + "percentage"
	ToolMemory        = ToolPrefix + "memory"
	ToolConstant      = ToolPrefix + "constant"
	ToolPaste         = ToolPrefix + "paste"
	ToolErase         = ToolPrefix + "erase"
	ToolReadDisplay   = ToolPrefix + "read_display"
)
