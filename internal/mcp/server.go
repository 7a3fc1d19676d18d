package mcp

import (
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/liftlog/internal/exercise"
)

// New creates an MCP server with all tools and resources registered. Data
// queries go to ds; exercise lookups go to lib. A nil logger discards output.
func New(ds DataSource, lib *exercise.Library, version string, log *slog.Logger) *server.MCPServer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := server.NewMCPServer("liftlog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("liftlog strength training server. Query harmonized workout sets, training volume, personal records, bodyweight and relative strength, and look up exercises in the exercise library."),
	)

	h := &handlers{ds: ds, lib: lib, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutSets, Handler: h.getWorkoutSets},
		server.ServerTool{Tool: toolGetTrainingSummary, Handler: h.getTrainingSummary},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetRelativeStrength, Handler: h.getRelativeStrength},
		server.ServerTool{Tool: toolGetExerciseSummaries, Handler: h.getExerciseSummaries},
		server.ServerTool{Tool: toolGetBodyweight, Handler: h.getBodyweight},
		server.ServerTool{Tool: toolSearchExercises, Handler: h.searchExercises},
		server.ServerTool{Tool: toolGetSimilarExercises, Handler: h.getSimilarExercises},
		server.ServerTool{Tool: toolListUnknownExercises, Handler: h.listUnknownExercises},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resDataStats, Handler: h.dataStats},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	lib *exercise.Library
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"liftlog://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("Every exercise in the library with force, mechanic, equipment, muscles and variation parent"),
	mcp.WithMIMEType("application/json"),
)

var resDataStats = mcp.NewResource(
	"liftlog://data_stats",
	"Data Stats",
	mcp.WithResourceDescription("Set and session counts, data time span and the cleaning statistics of the loaded run"),
	mcp.WithMIMEType("application/json"),
)
