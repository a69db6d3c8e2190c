// Package core implements the forecasting logic for synthcast: synthetic
// signal generation, train/validation splitting, supervised windowing,
// classical baseline forecasters, the window model trainer, and the
// orchestration entry points used by the CLI and the MCP server.
package core
